package game

import (
	"log/slog"
	"time"
)

// Config holds presentation settings
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// ShowDebug starts with the F1 overlay visible
	ShowDebug bool

	// ProfileOnFPSDrop captures a CPU profile and trace when FPS falls below FPSDropThreshold
	ProfileOnFPSDrop bool

	// FPSDropThreshold is the FPS below which a drop is reported
	FPSDropThreshold float64

	// FPSDropCooldown is the minimum time between two reported drops
	FPSDropCooldown time.Duration

	// StartupGrace ignores FPS drops right after launch
	StartupGrace time.Duration

	// ProfilesDir is where captured profiles are written
	ProfilesDir string

	// LogLevel for the presentation logger
	LogLevel slog.Level
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      800,
		ScreenHeight:     600,
		Title:            "Wave Shooter",
		FPSDropThreshold: 45,
		FPSDropCooldown:  10 * time.Second, // Don't capture more than once every 10 seconds
		StartupGrace:     3 * time.Second,
		ProfilesDir:      "profiles",
		LogLevel:         slog.LevelInfo,
	}
}
