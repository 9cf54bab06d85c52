package tui

import (
	"fmt"

	"github.com/vovakirdan/dragon-runner/internal/core"
	"github.com/vovakirdan/dragon-runner/internal/gamestate"
)

// Visual characters for the stage
const (
	DragonBody = '█'
	DragonHead = '◆'
	DragonWing = '▲'
	DragonTail = '▶'
	DragonLeg1 = '╱'
	DragonLeg2 = '╲'
	GroundChar = '═'
	StarChar   = '·'
	PebbleChar = '.'
)

// Stage layout
const (
	stageHeight  = 10
	dragonX      = 6
	dragonHeight = 3
	jumpHeight   = 3
	groundOffset = 2 // Ground line distance from the bottom of the stage
	skyRows      = 3
	starSpacing  = 11
	pebbleGap    = 7
)

// DrawStage draws a still picture of the store into dst: the sky, the ground,
// the dragon (raised while jumping, glowing while invincible) and a message
// box when no run is in progress. Sky and pebbles shift with the distance.
func DrawStage(dst *core.Screen, snap gamestate.Snapshot) {
	dst.Clear()

	offset := int(snap.Distance)
	drawSky(dst, offset)

	groundY := dst.Height() - groundOffset
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorRock)
	drawPebbles(dst, groundY+1, offset)

	drawDragon(dst, snap, groundY)

	switch snap.Status {
	case gamestate.StatusIdle:
		drawCenteredMessage(dst, "DRAGON RUNNER", "Press Enter to start", core.ColorGlow)
	case gamestate.StatusGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Enter to restart", snap.Score), core.ColorVolcano)
	}
}

// drawSky scatters stars over the top rows. Stars drift at half the
// ground speed.
func drawSky(dst *core.Screen, offset int) {
	w := dst.Width()
	if w == 0 {
		return
	}
	for row, n := 0, core.Min(skyRows, dst.Height()); row < n; row++ {
		for x := row * 4; x < w; x += starSpacing {
			dst.SetColored(wrap(x-offset/2, w), row, StarChar, core.ColorSky)
		}
	}
}

// drawPebbles draws the gravel row under the ground line.
func drawPebbles(dst *core.Screen, y, offset int) {
	w := dst.Width()
	if w == 0 {
		return
	}
	for x := 0; x < w; x += pebbleGap {
		dst.SetColored(wrap(x-offset, w), y, PebbleChar, core.ColorGray)
	}
}

// wrap maps x into [0, w).
func wrap(x, w int) int {
	return ((x % w) + w) % w
}

// drawDragon renders the player character.
//
//	 ▲◆
//	███▶
//	╱ ╲
func drawDragon(dst *core.Screen, snap gamestate.Snapshot, groundY int) {
	color := core.ColorLeaf
	if snap.IsInvincible {
		color = core.ColorGlow
	}

	baseY := groundY - dragonHeight
	if snap.IsJumping {
		baseY -= jumpHeight
	}
	x := dragonX

	dst.SetColored(x+1, baseY, DragonWing, color)
	dst.SetColored(x+2, baseY, DragonHead, color)

	dst.SetColored(x, baseY+1, DragonBody, color)
	dst.SetColored(x+1, baseY+1, DragonBody, color)
	dst.SetColored(x+2, baseY+1, DragonBody, color)
	dst.SetColored(x+3, baseY+1, DragonTail, color)

	if snap.IsJumping {
		// Legs tucked in the air
		dst.SetColored(x, baseY+2, DragonLeg1, color)
		dst.SetColored(x+1, baseY+2, DragonLeg2, color)
		return
	}
	dst.SetColored(x, baseY+2, DragonLeg1, color)
	dst.SetColored(x+2, baseY+2, DragonLeg2, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)

	dst.DrawTextColored(box.X+(boxW-titleW)/2, box.Y+1, title, color)
	dst.DrawText(box.X+(boxW-subtitleW)/2, box.Y+3, subtitle)
}
