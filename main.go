package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"waveshooter/config"
	"waveshooter/game"
	"waveshooter/sim"
)

func main() {
	cfg := game.DefaultConfig()

	seed := flag.Int64("seed", config.GetEnvInt(config.EnvSeed, 0), "random seed (0 = time based)")
	flag.BoolVar(&cfg.ShowDebug, "debug", config.GetEnvBool(config.EnvDebug, false), "show the debug overlay at start")
	flag.BoolVar(&cfg.ProfileOnFPSDrop, "profile", config.GetEnvBool(config.EnvProfile, false), "capture CPU profiles on FPS drops")
	flag.Parse()
	cfg.LogLevel = config.GetEnvLevel(config.EnvLogLevel, cfg.LogLevel)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	opts := []sim.Option{sim.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, sim.WithSeed(*seed))
	}
	arena, err := sim.NewArena(sim.DefaultConfig(), 0, opts...)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.NewGame(cfg, arena, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
