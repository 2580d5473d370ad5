// pkg/render/color.go
package render

import (
	"image/color"

	"code-defense/internal/defs"
)

// TowerColors is the neon colour of each developer archetype.
var TowerColors = map[defs.TowerType]color.RGBA{
	defs.TowerJuniorDev:       {0, 255, 255, 255},
	defs.TowerSeniorArchitect: {255, 136, 0, 255},
	defs.TowerUIDesigner:      {255, 0, 255, 255},
	defs.TowerDataEngineer:    {0, 255, 0, 255},
	defs.TowerSecurityExpert:  {255, 0, 0, 255},
}

// BugColors is the body colour of each bug type.
var BugColors = map[defs.EnemyType]color.RGBA{
	defs.EnemyTypo:        {255, 102, 0, 255},
	defs.EnemyNullPointer: {255, 255, 255, 255},
	defs.EnemyMemoryLeak:  {0, 255, 0, 255},
	defs.EnemySystemCrash: {255, 0, 0, 255},
}

var fallbackColor = color.RGBA{200, 200, 200, 255}

// TowerColor returns the colour for t, grey for unknown types loaded from JSON.
func TowerColor(t defs.TowerType) color.RGBA {
	if c, ok := TowerColors[t]; ok {
		return c
	}
	return fallbackColor
}

// BugColor returns the colour for t, grey for unknown types.
func BugColor(t defs.EnemyType) color.RGBA {
	if c, ok := BugColors[t]; ok {
		return c
	}
	return fallbackColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// HealthColor fades from green at full health through yellow to red.
func HealthColor(ratio float64) color.RGBA {
	ratio = max(0, min(1, ratio))
	if ratio >= 0.5 {
		return color.RGBA{R: uint8(255 * (1 - ratio) * 2), G: 255, A: 255}
	}
	return color.RGBA{R: 255, G: uint8(255 * ratio * 2), A: 255}
}
