package controller

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	m "gooze.dev/pkg/mutview/internal/model"
)

// Score colour scale: red at 0, orange at 0.5, green at 1.
var (
	scoreLow, _  = colorful.Hex("#d7191c")
	scoreMid, _  = colorful.Hex("#fdae61")
	scoreHigh, _ = colorful.Hex("#1a9641")
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	lineNoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6).Align(lipgloss.Right).PaddingRight(1)
	activeLine     = lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true)
	mutantLine     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	replacement    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	pickerActive   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true).Padding(0, 1)
	pickerEntry    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	diffAdd        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	diffDel        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	checkboxCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// scoreColor maps a mutation score in [0, 1] onto the report colour scale.
func scoreColor(score float64) lipgloss.Color {
	switch {
	case score <= 0:
		return lipgloss.Color(scoreLow.Hex())
	case score >= 1:
		return lipgloss.Color(scoreHigh.Hex())
	case score < 0.5:
		return lipgloss.Color(scoreLow.BlendLab(scoreMid, score/0.5).Clamped().Hex())
	default:
		return lipgloss.Color(scoreMid.BlendLab(scoreHigh, (score-0.5)/0.5).Clamped().Hex())
	}
}

// statusColor is the foreground used for a mutant status label.
func statusColor(status m.Status) lipgloss.Color {
	switch status {
	case m.StatusAlive, m.StatusNoCoverage:
		return lipgloss.Color("9")
	case m.StatusKilled, m.StatusKilledByCompiler, m.StatusTimeout:
		return lipgloss.Color("10")
	default:
		return lipgloss.Color("11")
	}
}
