// Package tui provides the terminal console for the dragon runner store,
// including SSH server support via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-runner/internal/config"
	"github.com/vovakirdan/dragon-runner/internal/core"
	"github.com/vovakirdan/dragon-runner/internal/gamestate"
	"github.com/vovakirdan/dragon-runner/internal/storage"
)

// GameID is the id finished runs are recorded under.
const GameID = "dragon"

// Model is the Bubble Tea model driving a game state store from the keyboard.
// Each key press maps to one store operation; the view shows the stage,
// the HUD and the latest recorded runs.
type Model struct {
	state      *gamestate.Store
	history    RunHistory
	cfg        config.DragonConfig
	runtime    core.RuntimeConfig
	screen     *core.Screen
	theme      Theme
	keys       KeyMap
	help       help.Model
	table      table.Model
	runs       []storage.ScoreEntry
	difficulty *config.DifficultyManager
	logger     *log.Logger
	recorded   bool
	quitting   bool
}

// NewModel creates a console over state. history may be nil.
func NewModel(state *gamestate.Store, history RunHistory, cfg config.DragonConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt = core.DefaultConfig()
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		state:      state,
		history:    history,
		cfg:        cfg,
		runtime:    rt,
		screen:     core.NewScreen(rt.ScreenW, stageHeight),
		theme:      NewTheme(cfg.Theme),
		keys:       DefaultKeyMap(),
		help:       h,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     logger,
	}
	m.table = newHistoryTable(rt.ScreenW, m.historyHeight())
	m.loadRuns()
	return m
}

// historyHeight is how many table rows fit under the stage.
func (m Model) historyHeight() int {
	return core.Clamp(m.runtime.ScreenH-stageHeight-8, 1, m.cfg.Score.History)
}

// loadRuns refreshes the run table from the history.
func (m *Model) loadRuns() {
	if m.history == nil || m.cfg.Score.History == 0 {
		m.runs = nil
		m.table.SetRows(nil)
		return
	}

	runs, err := m.history.RecentScores(GameID, m.cfg.Score.History)
	if err != nil {
		m.logger.Warn("could not load run history", "error", err)
		runs = nil
	}
	m.runs = runs
	m.table.SetRows(historyRows(runs))
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, stageHeight)
		m.help.Width = msg.Width
		m.table = newHistoryTable(msg.Width, m.historyHeight())
		m.table.SetRows(historyRows(m.runs))
		return m, nil
	}
	return m, nil
}

// handleKey applies the store operation bound to a key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, steps := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		m.state.StartGame()
		// StartGame leaves the flags to their owner, which is the console here
		m.state.SetJumping(false)
		m.state.SetInvincible(false)
		m.recorded = false

	case core.ActionScore:
		if m.state.Status() != gamestate.StatusPlaying {
			return m, nil
		}
		m.state.IncrementScore(steps * m.cfg.Score.Step)
		m.state.AddDistance(m.state.Speed())
		m.applyDifficulty()

	case core.ActionGameOver:
		if m.state.Status() != gamestate.StatusPlaying {
			return m, nil
		}
		m.state.GameOver()
		m.recordRun()

	case core.ActionJump:
		if m.state.Status() == gamestate.StatusPlaying {
			m.state.SetJumping(!m.state.IsJumping())
		}

	case core.ActionInvincible:
		if m.state.Status() == gamestate.StatusPlaying {
			m.state.SetInvincible(!m.state.IsInvincible())
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// applyDifficulty sets the run speed from the score curve when progression is on.
// A new run keeps the base speed until its first award.
func (m Model) applyDifficulty() {
	if !m.difficulty.IsEnabled() {
		return
	}
	m.state.SetSpeed(m.difficulty.Speed(m.cfg.Run.BaseSpeed, m.state.Score()))
}

// recordRun saves the finished run once. Runs without points are not kept.
func (m *Model) recordRun() {
	if m.recorded {
		return
	}
	m.recorded = true

	score := m.state.Score()
	if m.history == nil || score <= 0 {
		return
	}
	if _, err := m.history.SaveScore(GameID, score); err != nil {
		m.logger.Error("could not record run", "score", score, "error", err)
		return
	}
	m.logger.Debug("run recorded", "score", score)
	m.loadRuns()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.state.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader(snap))
	b.WriteString("\n\n")

	DrawStage(m.screen, snap)
	b.WriteString(RenderScreen(m.screen, m.theme))
	b.WriteString("\n")

	if m.history != nil && m.cfg.Score.History > 0 {
		b.WriteString(renderHistory(m.table, m.runs, m.theme))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderHeader renders the title, status badge and HUD values.
func (m Model) renderHeader(snap gamestate.Snapshot) string {
	t := m.theme

	badge := t.StatusIdle
	switch snap.Status {
	case gamestate.StatusPlaying:
		badge = t.StatusPlaying
	case gamestate.StatusGameOver:
		badge = t.StatusGameOver
	}

	title := lipgloss.JoinHorizontal(lipgloss.Center,
		t.HUDTitle.Render("DRAGON RUNNER"), "  ",
		badge.Render(strings.ToUpper(snap.Status.String())),
	)

	field := func(label, value string) string {
		return t.HUDLabel.Render(label+" ") + t.HUDValue.Render(value)
	}
	flag := func(label string, on bool) string {
		if on {
			return t.HUDFlagOn.Render(label)
		}
		return t.HUDLabel.Render(label)
	}

	record := t.HUDLabel.Render("HI ") + t.HUDRecord.Render(fmt.Sprintf("%d", snap.HighScore))

	hud := strings.Join([]string{
		field("SCORE", fmt.Sprintf("%d", snap.Score)),
		record,
		field("SPEED", fmt.Sprintf("%.1f", snap.Speed)),
		field("DIST", fmt.Sprintf("%.0f", snap.Distance)),
		flag("JUMP", snap.IsJumping),
		flag("SHIELD", snap.IsInvincible),
	}, "   ")

	return title + "\n" + hud
}

// Run starts the console in the alternate screen and blocks until the user quits.
func Run(state *gamestate.Store, history RunHistory, cfg config.DragonConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(state, history, cfg, rt, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}
