package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/coldpitch/internal/clipboard"
	"github.com/Makepad-fr/coldpitch/internal/draft"
	"github.com/Makepad-fr/coldpitch/internal/model"
)

// field indexes follow the on-screen tab order.
type field int

const (
	fieldBusiness field = iota
	fieldNiche
	fieldCity
	fieldOwner
	fieldSender
	fieldObservations
	fieldCount
)

var lineFields = [...]struct {
	label, placeholder string
}{
	fieldBusiness: {"Business Name", "e.g., Reform Fitness"},
	fieldNiche:    {"Niche", "e.g., Spa, Gym, Dental, Home Services"},
	fieldCity:     {"City (optional)", "e.g., Austin"},
	fieldOwner:    {"Owner's Name (optional)", "e.g., Mike"},
	fieldSender:   {"Your Name", "e.g., Alex"},
}

const (
	observationsLabel       = "Key Observations"
	observationsPlaceholder = "e.g., your booking page asks for phone but there is no follow-up; last IG post 6 weeks ago; strong reviews on Google"
	observationsHint        = "Keep it gentle and specific. One clear observation is enough."
)

// Options configure a new form.
type Options struct {
	Initial   model.FormInput
	Clipboard clipboard.Writer
	Logger    *zap.Logger
}

type copyResultMsg struct {
	seq int
	ok  bool
}

type copyResetMsg struct{ seq int }

// tickFunc schedules a message after d; tea.Tick outside tests.
type tickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Model is the Bubble Tea model for the outreach form.
type Model struct {
	inputs [fieldObservations]textinput.Model
	obs    textarea.Model
	focus  field

	form  model.FormInput
	draft model.Rendered

	// copied drives the "Copied!" label; copySeq discards stale results and resets.
	copied  bool
	copySeq int

	clip  clipboard.Writer
	tick  tickFunc
	log   *zap.Logger
	keys  keyMap
	help  help.Model
	width int
}

func New(opt Options) Model {
	m := Model{
		clip: opt.Clipboard,
		tick: tea.Tick,
		log:  opt.Logger,
		keys: defaultKeys(),
		help: help.New(),
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = lineFields[i].placeholder
		ti.CharLimit = 0
		m.inputs[i] = ti
	}
	m.obs = textarea.New()
	m.obs.Placeholder = observationsPlaceholder
	m.obs.ShowLineNumbers = false
	m.obs.CharLimit = 0
	m.obs.MaxHeight = 0
	m.obs.SetHeight(4)
	m.layout()

	m.setForm(opt.Initial)
	m.setFocus(fieldBusiness)
	return m
}

// Form returns the current field values.
func (m Model) Form() model.FormInput { return m.form }

// Draft returns the subject/body for the current values.
func (m Model) Draft() model.Rendered { return m.draft }

// Copied reports whether the copy indicator is showing.
func (m Model) Copied() bool { return m.copied }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case copyResultMsg:
		if msg.seq != m.copySeq {
			return m, nil
		}
		if !msg.ok {
			m.copied = false
			m.log.Debug("clipboard write failed")
			return m, nil
		}
		m.copied = true
		seq := msg.seq
		return m, m.tick(clipboard.CopiedIndicatorTTL, func(time.Time) tea.Msg {
			return copyResetMsg{seq: seq}
		})

	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			m.copySeq++
			return m, copyCmd(m.clip, m.draft.Payload(), m.copySeq)
		case key.Matches(msg, m.keys.Example):
			m.setForm(model.Example())
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.setForm(model.Empty())
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case msg.Type == tea.KeyEnter && m.focus != fieldObservations:
			return m, m.setFocus(m.focus + 1)
		}
	}

	before := m.form
	var cmd tea.Cmd
	if m.focus == fieldObservations {
		m.obs, cmd = m.obs.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	m.refresh()
	if m.form != before {
		m.copied = false
	}
	return m, cmd
}

func copyCmd(w clipboard.Writer, payload string, seq int) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{seq: seq, ok: clipboard.Copy(w, payload)}
	}
}

func (m *Model) setFocus(f field) tea.Cmd {
	f = (f%fieldCount + fieldCount) % fieldCount
	m.focus = f
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.obs.Blur()
	if f == fieldObservations {
		return m.obs.Focus()
	}
	return m.inputs[f].Focus()
}

func (m *Model) setForm(f model.FormInput) {
	m.inputs[fieldBusiness].SetValue(f.BusinessName)
	m.inputs[fieldNiche].SetValue(f.Niche)
	m.inputs[fieldCity].SetValue(f.City)
	m.inputs[fieldOwner].SetValue(f.OwnerName)
	m.inputs[fieldSender].SetValue(f.YourName)
	m.obs.SetValue(f.Observations)
	m.refresh()
}

func (m *Model) refresh() {
	m.form = model.FormInput{
		BusinessName: m.inputs[fieldBusiness].Value(),
		Niche:        m.inputs[fieldNiche].Value(),
		City:         m.inputs[fieldCity].Value(),
		OwnerName:    m.inputs[fieldOwner].Value(),
		YourName:     m.inputs[fieldSender].Value(),
		Observations: m.obs.Value(),
	}
	m.draft = draft.Render(m.form)
}

// Run shows the form full-screen and returns its final state.
func Run(opt Options) (Model, error) {
	p := tea.NewProgram(New(opt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Model{}, nil
	}
	return fm, nil
}
