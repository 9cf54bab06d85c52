package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-runner/internal/config"
	"github.com/vovakirdan/dragon-runner/internal/core"
)

// Theme contains all visual styles of the console.
type Theme struct {
	// Stage cell colors
	Cells map[core.Color]lipgloss.Style

	// HUD styles
	HUDTitle  lipgloss.Style
	HUDLabel  lipgloss.Style
	HUDValue  lipgloss.Style
	HUDRecord lipgloss.Style
	HUDFlagOn lipgloss.Style

	// Status badges
	StatusIdle     lipgloss.Style
	StatusPlaying  lipgloss.Style
	StatusGameOver lipgloss.Style

	// Run history
	TableTitle lipgloss.Style
}

// NewTheme builds the console styles from the configured palette.
func NewTheme(p config.ThemeConfig) Theme {
	leaf := lipgloss.Color(p.Leaf)
	rock := lipgloss.Color(p.Rock)
	volcano := lipgloss.Color(p.Volcano)
	glow := lipgloss.Color(p.Glow)
	sky := lipgloss.Color(p.Sky)

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorLeaf:    lipgloss.NewStyle().Foreground(leaf),
			core.ColorRock:    lipgloss.NewStyle().Foreground(rock),
			core.ColorVolcano: lipgloss.NewStyle().Foreground(volcano).Bold(true),
			core.ColorGlow:    lipgloss.NewStyle().Foreground(glow).Bold(true),
			core.ColorSky:     lipgloss.NewStyle().Foreground(sky),
			core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},

		HUDTitle:  lipgloss.NewStyle().Bold(true).Foreground(glow),
		HUDLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:  lipgloss.NewStyle().Bold(true),
		HUDRecord: lipgloss.NewStyle().Bold(true).Foreground(glow),
		HUDFlagOn: lipgloss.NewStyle().Foreground(leaf).Bold(true),

		StatusIdle:     badge.Background(sky).Foreground(lipgloss.Color("15")),
		StatusPlaying:  badge.Background(leaf).Foreground(lipgloss.Color("15")),
		StatusGameOver: badge.Background(volcano).Foreground(lipgloss.Color("15")),

		TableTitle: lipgloss.NewStyle().Bold(true).Foreground(glow).MarginTop(1),
	}
}

// DefaultTheme returns the jurassic theme with the built-in palette.
func DefaultTheme() Theme {
	return NewTheme(config.Default().Theme)
}

// cellStyle returns the style for a stage color, falling back to plain text.
func (t Theme) cellStyle(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return t.Cells[core.ColorDefault]
}
