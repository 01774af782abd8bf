package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/coldpitch/internal/ui"
)

const (
	copyLabel   = "Copy Subject + Message"
	copiedLabel = "Copied!"
	badge       = "Professional · Concise · Empathetic"

	defaultWidth = 80
	twoColumnMin = 100
)

func (m Model) View() string {
	t := ui.Current()
	w, colW, twoCol := m.columns()

	left := make([]string, 0, 3)
	for _, f := range []field{fieldBusiness, fieldNiche, fieldCity} {
		left = append(left, m.lineField(f))
	}
	right := make([]string, 0, 3)
	for _, f := range []field{fieldOwner, fieldSender} {
		right = append(right, m.lineField(f))
	}
	right = append(right, m.observationsField())

	var form string
	if twoCol {
		form = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colW+2).Render(strings.Join(left, "\n\n")),
			strings.Join(right, "\n\n"),
		)
	} else {
		form = strings.Join(append(left, right...), "\n\n")
	}

	copyBtn := t.Button.Render(copyLabel)
	if m.copied {
		copyBtn = t.ButtonActive.Render(copiedLabel)
	}
	actions := strings.Join([]string{
		copyBtn,
		t.Accent.Render("Fill Example"),
		t.Accent.Render("Reset"),
		t.Badge.Render(badge),
	}, "  ")

	outW := w - 8
	preview := strings.Join([]string{
		t.Label.Render("Subject / Opening"),
		t.Output.Width(outW).Render(m.draft.Subject),
		"",
		t.Label.Render("Message Preview"),
		t.Output.Width(outW).Render(m.draft.Body),
	}, "\n")

	return strings.Join([]string{
		t.Title.Render("Cold Outreach Draft"),
		ui.Panel([]string{form, "", actions}),
		ui.Panel([]string{preview}),
		m.help.View(m.keys),
	}, "\n")
}

func (m Model) label(f field, text string) string {
	t := ui.Current()
	if m.focus == f {
		return t.Focused.Render(t.Cursor + text)
	}
	return t.Label.Render("  " + text)
}

func (m Model) lineField(f field) string {
	return m.label(f, lineFields[f].label) + "\n  " + m.inputs[f].View()
}

func (m Model) observationsField() string {
	return m.label(fieldObservations, observationsLabel) + "\n" + m.obs.View() + "\n" + ui.Current().Muted.Render("  "+observationsHint)
}

// columns returns total width, per-column width and whether fields sit side by side.
func (m Model) columns() (w, colW int, twoCol bool) {
	w = m.width
	if w <= 0 {
		w = defaultWidth
	}
	if w >= twoColumnMin {
		return w, (w - 8) / 2, true
	}
	return w, w - 6, false
}

func (m *Model) layout() {
	_, colW, _ := m.columns()
	for i := range m.inputs {
		m.inputs[i].Width = colW - 4
	}
	m.obs.SetWidth(colW - 2)
}
