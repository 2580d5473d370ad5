// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/entity"
	"code-defense/internal/event"
	"code-defense/internal/system"
	"code-defense/internal/types"
	"code-defense/pkg/path"
)

// Slot is a placement spot on the map.
type Slot struct {
	Pos      path.Point
	Occupied bool
	TowerID  types.EntityID
}

// Game holds the main game state and logic. It is not safe for concurrent use:
// one goroutine calls Update and the command methods, others use Submit.
type Game struct {
	Level              defs.LevelDefinition
	Route              path.Polyline
	Slots              []Slot
	World              *entity.World
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	Scheduler          *system.Scheduler
	EventDispatcher    *event.Dispatcher
	SpeedMultiplier    float64

	gold   int
	lives  int
	score  int
	wave   int
	status component.Status

	clock      float64 // ms of simulated play time
	nextWaveAt float64 // clock value of the pending auto-start, 0 if none
	session    string

	selectedType  defs.TowerType
	selectedTower types.EntityID
	hoveredSlot   int

	inbox *inbox
}

// NewGame initializes a new game on the given level.
func NewGame(levelID int) (*Game, error) {
	level, ok := defs.LevelLibrary[levelID]
	if !ok {
		return nil, fmt.Errorf("unknown level %d", levelID)
	}

	world := entity.NewWorld()
	g := &Game{
		World:              world,
		WaveSystem:         system.NewWaveSystem(),
		MovementSystem:     system.NewMovementSystem(world),
		CombatSystem:       system.NewCombatSystem(world),
		VisualEffectSystem: system.NewVisualEffectSystem(),
		Scheduler:          system.NewScheduler(),
		EventDispatcher:    event.NewDispatcher(),
		SpeedMultiplier:    1,
		inbox:              newInbox(),
	}
	g.load(level)
	return g, nil
}

// load puts the game into the idle state of level without emitting events.
func (g *Game) load(level defs.LevelDefinition) {
	g.Level = level
	g.Route = level.Route()
	g.Slots = g.Slots[:0]
	for _, p := range level.SlotPoints() {
		g.Slots = append(g.Slots, Slot{Pos: p})
	}
	g.World.Clear()
	g.WaveSystem.Reset()
	g.VisualEffectSystem.Reset()
	g.Scheduler.Reset()

	g.gold = level.InitialGold
	g.lives = level.InitialLives
	g.score = 0
	g.wave = 0
	g.status = component.StatusIdle
	g.clock = 0
	g.nextWaveAt = 0
	g.session = types.NewSessionID()
	g.selectedType = ""
	g.selectedTower = ""
	g.hoveredSlot = -1
}

// Gold returns the current gold.
func (g *Game) Gold() int { return g.gold }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Wave returns the number of the current wave, 0 before the first.
func (g *Game) Wave() int { return g.wave }

// Status returns the run status.
func (g *Game) Status() component.Status { return g.status }

// Clock returns simulated play time in ms.
func (g *Game) Clock() float64 { return g.clock }

// Start begins the level, or resumes it when paused.
func (g *Game) Start() bool {
	switch {
	case g.status == component.StatusPaused:
		return g.Resume()
	case g.status != component.StatusIdle:
		return false
	}
	g.setStatus(component.StatusPlaying)
	if g.wave == 0 {
		g.startNextWave()
	}
	return true
}

// Pause freezes simulated time.
func (g *Game) Pause() bool {
	if g.status != component.StatusPlaying {
		return false
	}
	g.setStatus(component.StatusPaused)
	return true
}

// Resume continues a paused game.
func (g *Game) Resume() bool {
	if g.status != component.StatusPaused {
		return false
	}
	g.setStatus(component.StatusPlaying)
	return true
}

// Reset returns the current level to its initial state and re-announces every counter.
func (g *Game) Reset() {
	dropped := g.Scheduler.Pending()
	g.load(g.Level)
	slog.Info("game reset", "level", g.Level.ID, "session", g.session, "dropped_tasks", dropped)
	g.emitAll()
}

// SelectLevel switches to another level. It is refused while a wave is being played.
func (g *Game) SelectLevel(id int) bool {
	if g.status == component.StatusPlaying {
		return false
	}
	level, ok := defs.LevelLibrary[id]
	if !ok {
		return false
	}
	g.load(level)
	slog.Info("level selected", "level", id, "name", level.Name, "session", g.session)
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelChanged, Data: id})
	g.emitAll()
	return true
}

func (g *Game) emitAll() {
	g.emit(event.GoldChanged, g.gold)
	g.emit(event.LivesChanged, g.lives)
	g.emit(event.ScoreChanged, g.score)
	g.emit(event.WaveChanged, g.wave)
	g.emit(event.StatusChanged, g.status)
}

// Update advances the simulation by deltaTime seconds of real time.
func (g *Game) Update(deltaTime float64) {
	g.drainInbox()
	if g.status != component.StatusPlaying || deltaTime <= 0 {
		return
	}

	deltaTime *= g.SpeedMultiplier
	elapsedMs := deltaTime * 1000
	g.clock += elapsedMs

	g.Scheduler.RunDue(g.clock)
	if g.status != component.StatusPlaying {
		return
	}

	for _, t := range g.WaveSystem.Update(elapsedMs) {
		g.spawnEnemy(t)
	}

	g.MovementSystem.Update(deltaTime*config.TicksPerSecond, g.onBreach)
	if g.status != component.StatusPlaying {
		return
	}

	report := g.CombatSystem.Update(g.clock)
	g.VisualEffectSystem.Add(report.Effects...)
	for _, k := range report.Kills {
		g.rewardKill(k.Enemy, k.Tower.Type())
	}
	for _, hit := range report.Deferred {
		g.scheduleDeferredHit(hit)
	}

	g.VisualEffectSystem.Update(elapsedMs)
	g.World.PruneDead()
	g.checkWaveComplete()
}

func (g *Game) spawnEnemy(t defs.EnemyType) {
	def, ok := defs.EnemyLibrary[t]
	if !ok {
		slog.Error("enemy definition not found", "type", t)
		return
	}
	g.World.AddEnemy(entity.NewEnemy(def, g.Route))
}

func (g *Game) onBreach(e *entity.Enemy) bool {
	g.lives--
	g.emit(event.LivesChanged, g.lives)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyBreached, Data: event.EnemyData{ID: e.ID, Enemy: e.Type}})
	if g.lives <= 0 {
		g.lives = 0
		g.setStatus(component.StatusDefeat)
		return false
	}
	return true
}

func (g *Game) rewardKill(e *entity.Enemy, by defs.TowerType) {
	g.gold += e.Reward
	g.score += e.Reward * config.KillScoreFactor
	g.emit(event.GoldChanged, g.gold)
	g.emit(event.ScoreChanged, g.score)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.BugKilled,
		Data: event.BugKilledData{Reward: e.Reward, Enemy: e.Type, Boss: e.Boss, Tower: by},
	})
}

// scheduleDeferredHit queues follow-up damage. It is dropped if the run was
// reset or the target is gone by the time it fires.
func (g *Game) scheduleDeferredHit(hit system.PendingHit) {
	target := hit.Target
	g.Scheduler.At(g.clock+hit.Delay, func() {
		if g.status != component.StatusPlaying || !target.Alive {
			return
		}
		if target.TakeDamage(hit.Damage) {
			g.rewardKill(target, hit.Tower)
		}
	})
}

func (g *Game) checkWaveComplete() {
	if !g.WaveSystem.CheckComplete(g.World.AliveEnemies()) {
		return
	}
	slog.Info("wave complete", "level", g.Level.ID, "wave", g.wave, "session", g.session)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveData{Level: g.Level.ID, Wave: g.wave, Total: len(g.Level.Waves)},
	})
	g.nextWaveAt = g.clock + config.PostWaveDelay
	g.Scheduler.At(g.nextWaveAt, func() {
		g.nextWaveAt = 0
		if g.status == component.StatusPlaying {
			g.startNextWave()
		}
	})
}

// startNextWave moves to the next wave, or to victory when none is left.
func (g *Game) startNextWave() {
	if g.wave >= len(g.Level.Waves) {
		slog.Info("level cleared", "level", g.Level.ID, "score", g.score, "session", g.session)
		g.setStatus(component.StatusVictory)
		return
	}
	def := g.Level.Waves[g.wave]
	g.wave++
	g.emit(event.WaveChanged, g.wave)
	g.WaveSystem.StartWave(g.wave, def)
	slog.Info("wave started", "level", g.Level.ID, "wave", g.wave, "bugs", def.Total(), "announced_delay", def.DelayBeforeWave.Duration())
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Level: g.Level.ID, Wave: g.wave, Total: len(g.Level.Waves)},
	})
}

func (g *Game) setStatus(s component.Status) {
	if g.status == s {
		return
	}
	slog.Debug("status changed", "from", g.status, "to", s)
	g.status = s
	g.emit(event.StatusChanged, s)
}

func (g *Game) emit(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
