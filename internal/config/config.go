// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	GridSize     = 40
	HUDHeight    = 40
	PanelWidth   = 220 // side panel with tower shop and inspection
	WindowWidth  = ScreenWidth + PanelWidth
	WindowHeight = ScreenHeight + HUDHeight

	MaxDeltaTime   = 0.06
	TicksPerSecond = 60.0 // enemy speeds are pixels per tick

	InitialGold  = 500
	InitialLives = 20

	AreaRadius        = 80.0
	AttackEffectTTL   = 100.0  // ms
	PostWaveDelay     = 3000.0 // ms
	ClickRadius       = 30.0
	SlowFactor        = 0.5
	SlowDuration      = 2000.0 // ms
	DelayedDamage     = 10
	DelayedDamageWait = 500.0 // ms
	BossDamageFactor  = 2

	MaxTowerLevel        = 3
	LevelDamageFactor    = 1.5
	LevelRangeFactor     = 1.1
	LevelIntervalFactor  = 0.9
	UpgradeCostFactor    = 0.5
	SellBaseFactor       = 0.7
	SellLevelBonusFactor = 0.25

	KillScoreFactor = 10

	TowerRadius       = 16.0
	EnemyRadius       = 10.0
	BossRadius        = 18.0
	SlotRadius        = 18.0
	PathWidth         = 24.0
	HealthBarWidth    = 24.0
	HealthBarHeight   = 4.0
	IndicatorRadius   = 10.0
	IndicatorOffsetX  = 30
	ClickCooldown     = 150 // ms
	SpeedButtonSize   = 12.0
	SpeedButtonOffset = 70
)

var (
	BackgroundColor  = color.RGBA{10, 10, 26, 255}
	GridColor        = color.RGBA{26, 26, 58, 255}
	PathColor        = color.RGBA{255, 0, 136, 200}
	PathEdgeColor    = color.RGBA{255, 0, 255, 255}
	CoreColor        = color.RGBA{0, 255, 255, 255}
	PortColor        = color.RGBA{255, 0, 0, 255}
	SlotColor        = color.RGBA{0, 255, 255, 90}
	SlotHoverColor   = color.RGBA{0, 255, 255, 200}
	SlotTakenColor   = color.RGBA{80, 80, 110, 160}
	SelectionColor   = color.RGBA{255, 255, 0, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	HealthBackColor  = color.RGBA{60, 0, 0, 255}
	HealthColor      = color.RGBA{0, 255, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{18, 18, 40, 255}
	ButtonColor      = color.RGBA{40, 40, 80, 255}
	ButtonHoverColor = color.RGBA{70, 70, 130, 255}
	ButtonOffColor   = color.RGBA{40, 40, 50, 255}
	WarningColor     = color.RGBA{255, 255, 0, 255}
	DangerColor      = color.RGBA{255, 0, 0, 255}
	SuccessColor     = color.RGBA{0, 255, 0, 255}

	StatusColors = map[string]color.RGBA{
		"idle":    {70, 130, 180, 220},
		"playing": {0, 200, 90, 220},
		"paused":  {220, 180, 60, 220},
		"victory": {0, 255, 255, 255},
		"defeat":  {220, 60, 60, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
