package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-runner/internal/core"
	"github.com/vovakirdan/dragon-runner/internal/gamestate"
)

func TestDrawStageGround(t *testing.T) {
	s := core.NewScreen(40, stageHeight)
	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying})

	ground := s.Row(stageHeight - groundOffset)
	if ground != strings.Repeat(string(GroundChar), 40) {
		t.Errorf("ground row = %q", ground)
	}
	if c := s.GetCell(0, stageHeight-groundOffset); c.Color != core.ColorRock {
		t.Errorf("ground color = %v, expected rock", c.Color)
	}
}

func TestDrawStageJumpRaisesDragon(t *testing.T) {
	groundY := stageHeight - groundOffset
	headY := groundY - dragonHeight

	s := core.NewScreen(40, stageHeight)
	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying})
	if s.Get(dragonX+2, headY) != DragonHead {
		t.Errorf("standing head not at row %d", headY)
	}

	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying, IsJumping: true})
	if s.Get(dragonX+2, headY-jumpHeight) != DragonHead {
		t.Errorf("jumping head not at row %d", headY-jumpHeight)
	}
	if s.Get(dragonX+2, headY) == DragonHead {
		t.Error("standing head should be cleared while jumping")
	}
}

func TestDrawStageInvincibleGlows(t *testing.T) {
	s := core.NewScreen(40, stageHeight)
	headY := stageHeight - groundOffset - dragonHeight

	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying})
	if c := s.GetCell(dragonX+2, headY); c.Color != core.ColorLeaf {
		t.Errorf("dragon color = %v, expected leaf", c.Color)
	}

	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying, IsInvincible: true})
	if c := s.GetCell(dragonX+2, headY); c.Color != core.ColorGlow {
		t.Errorf("dragon color = %v, expected glow", c.Color)
	}
}

// cellsOfColor returns the x positions in row y drawn with color c.
func cellsOfColor(s *core.Screen, y int, c core.Color) []int {
	var xs []int
	for x, w := 0, s.Width(); x < w; x++ {
		if s.GetCell(x, y).Color == c {
			xs = append(xs, x)
		}
	}
	return xs
}

func TestDrawStageBackdrop(t *testing.T) {
	s := core.NewScreen(40, stageHeight)
	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying})

	if stars := cellsOfColor(s, 0, core.ColorSky); len(stars) == 0 {
		t.Error("top row should hold sky stars")
	}
	pebbles := cellsOfColor(s, stageHeight-groundOffset+1, core.ColorGray)
	if len(pebbles) == 0 {
		t.Fatal("row under the ground should hold pebbles")
	}
	if s.Get(pebbles[0], stageHeight-groundOffset+1) != PebbleChar {
		t.Errorf("gray cell is %q, expected a pebble", s.Get(pebbles[0], stageHeight-groundOffset+1))
	}
}

func TestDrawStageScrollsWithDistance(t *testing.T) {
	pebbleY := stageHeight - groundOffset + 1

	s := core.NewScreen(40, stageHeight)
	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying})
	before := s.Row(pebbleY)

	DrawStage(s, gamestate.Snapshot{Status: gamestate.StatusPlaying, Distance: 3})
	after := s.Row(pebbleY)

	if before == after {
		t.Error("pebbles should move when the distance changes")
	}
	if s.GetCell(40-3, pebbleY).Rune != PebbleChar {
		t.Errorf("pebble at x=0 should wrap to x=37 after 3 steps, row = %q", after)
	}
}

func TestDrawStageMessages(t *testing.T) {
	tests := []struct {
		name   string
		snap   gamestate.Snapshot
		want   string
		absent bool
	}{
		{"idle", gamestate.Snapshot{Status: gamestate.StatusIdle}, "DRAGON RUNNER", false},
		{"gameover", gamestate.Snapshot{Status: gamestate.StatusGameOver, Score: 42}, "Score: 42", false},
		{"playing", gamestate.Snapshot{Status: gamestate.StatusPlaying}, "GAME OVER", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(60, stageHeight)
			DrawStage(s, tc.snap)
			got := strings.Contains(s.String(), tc.want)
			if got == tc.absent {
				t.Errorf("stage contains %q = %v, expected %v", tc.want, got, !tc.absent)
			}
		})
	}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		steps  int
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, 0},
		{runeKey("s"), core.ActionStart, 0},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionScore, 1},
		{runeKey("1"), core.ActionScore, 1},
		{runeKey("9"), core.ActionScore, 9},
		{runeKey("x"), core.ActionGameOver, 0},
		{runeKey("j"), core.ActionJump, 0},
		{runeKey("i"), core.ActionInvincible, 0},
		{runeKey("?"), core.ActionHelp, 0},
		{runeKey("q"), core.ActionQuit, 0},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{runeKey("z"), core.ActionNone, 0},
		{runeKey("0"), core.ActionNone, 0},
	}

	for _, tc := range tests {
		action, steps := keys.MapKey(tc.msg)
		if action != tc.action || steps != tc.steps {
			t.Errorf("MapKey(%q) = (%v, %d), expected (%v, %d)", tc.msg.String(), action, steps, tc.action, tc.steps)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorLeaf)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s, DefaultTheme())
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should emit one newline per extra row")
	}
}
