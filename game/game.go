package game

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"waveshooter/sim"
)

// Game adapts the simulation to ebiten's Update/Draw loop
type Game struct {
	arena    *sim.Arena
	renderer *Renderer
	hud      *HUD
	input    InputProvider
	keys     *PlayerInput
	config   Config
	logger   *slog.Logger

	debug *DebugState

	// Last snapshot returned by the arena
	snap sim.Snapshot

	// Monotonic clock origin handed to the simulation
	start time.Time

	// Last update time for frame time measurement
	lastUpdateTime time.Time

	fpsMonitor *FPSMonitor
	profiler   *Profiler
}

// NewGame wires the arena to the presentation layer
func NewGame(config Config, arena *sim.Arena, logger *slog.Logger) (*Game, error) {
	hud, err := NewHUD(config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		return nil, err
	}

	keys := NewPlayerInput(config.ScreenWidth, config.ScreenHeight)
	now := time.Now()
	g := &Game{
		arena:          arena,
		renderer:       NewRenderer(),
		hud:            hud,
		input:          keys,
		keys:           keys,
		config:         config,
		logger:         logger,
		debug:          &DebugState{ShowOverlay: config.ShowDebug},
		snap:           arena.Snapshot(),
		start:          now,
		lastUpdateTime: now,
		fpsMonitor:     NewFPSMonitor(config.FPSDropThreshold, config.FPSDropCooldown, config.StartupGrace),
	}

	if config.ProfileOnFPSDrop {
		p, err := NewProfiler(config.ProfilesDir, config.FPSDropCooldown, logger)
		if err != nil {
			return nil, err
		}
		g.profiler = p
	}
	return g, nil
}

// Elapsed returns the simulation clock
func (g *Game) Elapsed() time.Duration {
	return time.Since(g.start)
}

// Update polls input and advances the simulation by one frame
func (g *Game) Update() error {
	now := time.Now()
	frameTime := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now

	// F1 toggles the debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Toggle()
	}

	if g.fpsMonitor.Frame(g.Elapsed(), frameTime) {
		g.onFPSDrop()
	}

	prev := g.snap.SessionID
	g.snap = g.arena.Tick(g.Elapsed(), g.input.Poll())
	if g.snap.SessionID != prev {
		g.logger.Debug("presentation reset", "session_id", g.snap.SessionID)
	}
	return nil
}

// onFPSDrop logs the drop and starts a profile capture when enabled
func (g *Game) onFPSDrop() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	g.logger.Warn("fps drop",
		"fps", g.fpsMonitor.FPS,
		"enemies", g.snap.ActiveEnemies,
		"projectiles", len(g.snap.Projectiles),
		"num_gc", m.NumGC,
		"heap_alloc_kb", m.HeapAlloc/1024)

	if g.profiler == nil {
		return
	}
	reason := fmt.Sprintf("fps%.0f-enemies%d-projectiles%d", g.fpsMonitor.FPS, g.snap.ActiveEnemies, len(g.snap.Projectiles))
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.logger.Debug("profile capture skipped", "error", err)
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.renderer.Render(screen, g.snap)
	g.hud.Draw(screen, g.snap)

	if g.debug.ShowOverlay {
		drawDebug(screen, debugLines(g.snap, ebiten.ActualFPS(), len(g.keys.PressedKeys())), g.config.ScreenWidth)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
