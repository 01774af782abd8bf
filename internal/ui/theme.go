package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles styles + symbols + border.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Label, Muted, Accent, Success, Error lipgloss.Style
	Focused, Output, Button, ButtonActive       lipgloss.Style
	Badge                                       lipgloss.Style
	Border                                      lipgloss.Border
	BorderColor                                 lipgloss.TerminalColor
	SymOK, SymFail, Cursor                      string
}

var (
	current = classic()

	// savedProfile holds the detected color profile while mono forces Ascii.
	savedProfile *termenv.Profile
)

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		if savedProfile == nil {
			p := lipgloss.ColorProfile()
			savedProfile = &p
		}
		lipgloss.SetColorProfile(termenv.Ascii)
		current = mono()
		return
	case "neon":
		current = neon()
	default:
		current = classic()
	}
	if savedProfile != nil {
		lipgloss.SetColorProfile(*savedProfile)
		savedProfile = nil
	}
}

// Expose what renderers need
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true),
		Label:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Output:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		Button:       lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
		ButtonActive: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("42")).Foreground(lipgloss.Color("0")),
		Badge:        lipgloss.NewStyle().Faint(true).Italic(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		SymOK:        "✔", SymFail: "✖", Cursor: "> ",
	}
}

func neon() Theme {
	t := classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Focused = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	t.Button = t.Button.Background(lipgloss.Color("13"))
	t.BorderColor = lipgloss.Color("13")
	t.Output = t.Output.BorderForeground(lipgloss.Color("13"))
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain.Bold(true), Label: plain, Muted: plain, Accent: plain,
		Success: plain, Error: plain, Focused: plain.Underline(true),
		Output:       plain.Border(lipgloss.ASCIIBorder()).Padding(0, 1),
		Button:       plain,
		ButtonActive: plain.Bold(true),
		Badge:        plain,
		Border:       lipgloss.ASCIIBorder(),
		BorderColor:  lipgloss.NoColor{},
		SymOK:        "ok", SymFail: "x", Cursor: "> ",
	}
}
