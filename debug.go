package deckmorph

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugLogTick prints per-tick engine timing to stderr.
// Only called when the scene's debug mode is on.
func debugLogTick(tickTime time.Duration, d *Driver) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[deckmorph] tick: %v | cards: %d | kf: %d->%d | progress: %.3f\n",
		tickTime, len(d.frame), d.current, d.target, d.progress)
}

// drawDebugOverlay prints FPS and engine state in the screen corner.
func drawDebugOverlay(screen *ebiten.Image, d *Driver) {
	status := "idle"
	if d.Animating() {
		status = fmt.Sprintf("animating %.0f%%", d.Progress()*100)
	}
	hovered := "-"
	if d.HoveredGroup() != NoGroup {
		hovered = fmt.Sprintf("%d", d.HoveredGroup())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nkeyframe: %d -> %d (%s)\nhover: %s  selected: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		d.Current(), d.Target(), status,
		hovered, d.SelectedGroup()))
}
