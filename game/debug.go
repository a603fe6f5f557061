package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"waveshooter/sim"
)

// DebugState holds debug flags that persist across restarts
type DebugState struct {
	ShowOverlay bool // FPS, entity counts and wave state
}

// Toggle flips the overlay
func (d *DebugState) Toggle() { d.ShowOverlay = !d.ShowOverlay }

// debugLines formats the overlay text
func debugLines(snap sim.Snapshot, fps float64, keys int) []string {
	shortID := snap.SessionID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return []string{
		fmt.Sprintf("FPS: %.0f", fps),
		fmt.Sprintf("Session: %s (%s)", shortID, snap.State),
		fmt.Sprintf("Elapsed: %.1fs", snap.Elapsed.Seconds()),
		fmt.Sprintf("Wave: %d  speed +%.0f  radius %.0f  volley %d",
			snap.Wave.Number, snap.Wave.SpeedBonus, snap.Wave.EnemyRadius, snap.Wave.BulletsPerShot),
		fmt.Sprintf("Enemies: %d  Projectiles: %d", snap.ActiveEnemies, len(snap.Projectiles)),
		fmt.Sprintf("Keys held: %d", keys),
	}
}

// drawDebug prints the overlay in the top-right corner
func drawDebug(screen *ebiten.Image, lines []string, screenW int) {
	x := screenW - 300
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, 8+i*16)
	}
}
