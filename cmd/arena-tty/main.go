// Command arena-tty plays the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"waveshooter/config"
	"waveshooter/sim"
)

type app struct {
	screen tcell.Screen
	arena  *sim.Arena
	grid   grid
	keys   keyState
	start  time.Time
	logger *slog.Logger
}

func newApp(arena *sim.Arena, logger *slog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	a := &app{
		screen: screen,
		arena:  arena,
		start:  time.Now(),
		logger: logger,
	}
	a.resize()
	return a, nil
}

func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.grid = grid{cols: cols, rows: rows, arena: a.arena.Config().Bounds()}
}

func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.keys.press(ev, time.Now())
	case *tcell.EventMouse:
		x, y := ev.Position()
		if p, ok := a.grid.point(x, y); ok {
			a.keys.click(p, ev.Buttons()&tcell.Button1 != 0)
		}
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			a.handle(ev)
			if a.keys.quit {
				return
			}
		case now := <-ticker.C:
			snap := a.arena.Tick(now.Sub(a.start), a.keys.input(now))
			draw(a.screen, a.grid, snap)
		}
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "arena-tty: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run(args []string) error {
	fs := flag.NewFlagSet("arena-tty", flag.ContinueOnError)
	seed := fs.Int64("seed", config.GetEnvInt(config.EnvSeed, 0), "random seed (0 = time based)")
	logPath := fs.String("log", config.GetEnv(config.EnvLogFile, "arena-tty.log"), "log file (the terminal is busy drawing)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	level := config.GetEnvLevel(config.EnvLogLevel, slog.LevelInfo)
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))

	opts := []sim.Option{sim.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, sim.WithSeed(*seed))
	}
	arena, err := sim.NewArena(sim.DefaultConfig(), 0, opts...)
	if err != nil {
		logger.Error("arena setup failed", "error", err)
		return err
	}

	a, err := newApp(arena, logger)
	if err != nil {
		logger.Error("terminal setup failed", "error", err)
		return err
	}
	defer a.screen.Fini()

	a.run()
	logger.Info("terminal session closed", "session_id", a.arena.Snapshot().SessionID)
	return nil
}
