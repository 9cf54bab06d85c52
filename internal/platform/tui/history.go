package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-runner/internal/storage"
)

// RunHistory records finished runs and lists the latest ones.
// *storage.Store satisfies it; a nil RunHistory disables the history panel.
type RunHistory interface {
	SaveScore(gameID string, score int) (int64, error)
	RecentScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

var _ RunHistory = (*storage.Store)(nil)

// newHistoryTable creates the table listing finished runs.
func newHistoryTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Finished", Width: 18},
	}

	// Give spare room to the date column
	if width > 40 {
		columns[1].Width = 12
		columns[2].Width = min(width-24, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(height, 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyRows converts score entries to table rows, newest first.
func historyRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// renderHistory renders the run table or an empty message.
func renderHistory(t table.Model, entries []storage.ScoreEntry, theme Theme) string {
	title := theme.TableTitle.Render("RECENT RUNS")
	if len(entries) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(0, 2)
		return title + "\n" + empty.Render("No runs recorded yet.")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return title + "\n" + box.Render(t.View())
}
