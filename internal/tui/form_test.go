package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/coldpitch/internal/clipboard"
	"github.com/Makepad-fr/coldpitch/internal/draft"
	"github.com/Makepad-fr/coldpitch/internal/model"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteText(text string) error {
	f.writes = append(f.writes, text)
	return f.err
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok)
	return mm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func keyPress(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

// copyNow presses the copy key and feeds the clipboard result back in.
func copyNow(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := update(t, m, keyPress(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func TestNewStartsEmpty(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, model.Empty(), m.Form())
	assert.Equal(t, "Quick question about your business", m.Draft().Subject)
	assert.Equal(t, fieldBusiness, m.focus)
}

func TestInitialValuesPrefill(t *testing.T) {
	m := New(Options{Initial: model.FormInput{YourName: "Alex"}})
	assert.Equal(t, "Alex", m.Form().YourName)
	assert.Contains(t, m.Draft().Body, "Best, Alex")
}

func TestTypingUpdatesPreview(t *testing.T) {
	m := typeText(t, New(Options{}), "Glow Spa")
	assert.Equal(t, "Glow Spa", m.Form().BusinessName)
	assert.Equal(t, "Quick question about Glow Spa", m.Draft().Subject)
	assert.Contains(t, m.View(), "Quick question about Glow Spa")
}

func TestTabMovesFocus(t *testing.T) {
	m := New(Options{})
	m, _ = update(t, m, keyPress(tea.KeyTab))
	m, _ = update(t, m, keyPress(tea.KeyTab))
	m, _ = update(t, m, keyPress(tea.KeyTab))
	m = typeText(t, m, "mike")

	assert.Equal(t, fieldOwner, m.focus)
	assert.Equal(t, "Hi Mike, quick question about your business", m.Draft().Subject)
}

func TestEnterAdvancesFromLineField(t *testing.T) {
	m, _ := update(t, New(Options{}), keyPress(tea.KeyEnter))
	assert.Equal(t, fieldNiche, m.focus)
}

func TestShiftTabWrapsToObservations(t *testing.T) {
	m, _ := update(t, New(Options{}), keyPress(tea.KeyShiftTab))
	assert.Equal(t, fieldObservations, m.focus)

	m = typeText(t, m, "last IG post 6 weeks ago")
	assert.Contains(t, m.Draft().Body, "I noticed last IG post 6 weeks ago.")
}

func TestFillExampleThenReset(t *testing.T) {
	m := New(Options{})

	m, _ = update(t, m, keyPress(tea.KeyCtrlR))
	m, _ = update(t, m, keyPress(tea.KeyCtrlE))
	assert.Equal(t, model.Example(), m.Form())
	assert.Equal(t, "Hi Mike, quick question about Reform Fitness", m.Draft().Subject)

	m, _ = update(t, m, keyPress(tea.KeyCtrlR))
	assert.Equal(t, model.Empty(), m.Form())
	assert.Equal(t, "Quick question about your business", m.Draft().Subject)
	assert.Contains(t, m.Draft().Body, "Hi there,")
}

func TestCopyShowsIndicatorThenResets(t *testing.T) {
	clip := &fakeClipboard{}
	m := New(Options{Initial: model.Example(), Clipboard: clip})

	var scheduled []time.Duration
	m.tick = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		scheduled = append(scheduled, d)
		return func() tea.Msg { return fn(time.Now()) }
	}

	m, tick := copyNow(t, m)
	require.Len(t, clip.writes, 1)
	assert.Equal(t, m.Draft().Subject+"\n\n"+m.Draft().Body, clip.writes[0])
	assert.True(t, m.Copied())
	assert.Contains(t, m.View(), copiedLabel)

	require.NotNil(t, tick)
	reset := tick()
	assert.Equal(t, []time.Duration{clipboard.CopiedIndicatorTTL}, scheduled)
	assert.Equal(t, copyResetMsg{seq: m.copySeq}, reset)

	m, _ = update(t, m, reset)
	assert.False(t, m.Copied())
	assert.Contains(t, m.View(), copyLabel)
}

func TestLongValuesAreNotTruncated(t *testing.T) {
	long := model.FormInput{
		BusinessName: strings.Repeat("b", 250),
		OwnerName:    strings.Repeat("o", 300),
		Observations: strings.Repeat("quiet on social ", 160),
		YourName:     "Alex",
	}
	m := New(Options{Initial: long})

	assert.Equal(t, long, m.Form())
	assert.Equal(t, draft.Render(long), m.Draft())

	m, _ = update(t, m, keyPress(tea.KeyCtrlR))
	m = typeText(t, m, strings.Repeat("x", 500))
	assert.Len(t, m.Form().BusinessName, 500)
}

func TestCopyFailureLeavesIndicatorOff(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("denied")}
	m, tick := copyNow(t, New(Options{Clipboard: clip}))

	assert.False(t, m.Copied())
	assert.Nil(t, tick)
}

func TestCopyWithoutClipboardFails(t *testing.T) {
	m, _ := copyNow(t, New(Options{}))
	assert.False(t, m.Copied())
}

func TestStaleResetKeepsNewerCopy(t *testing.T) {
	m := New(Options{Clipboard: &fakeClipboard{}})
	m, _ = copyNow(t, m)
	first := m.copySeq
	m, _ = copyNow(t, m)

	m, _ = update(t, m, copyResetMsg{seq: first})
	assert.True(t, m.Copied())
}

func TestStaleCopyResultIgnored(t *testing.T) {
	m := New(Options{Clipboard: &fakeClipboard{}})
	m, _ = update(t, m, keyPress(tea.KeyCtrlY))
	m, _ = update(t, m, copyResultMsg{seq: m.copySeq - 1, ok: true})
	assert.False(t, m.Copied())
}

func TestEditClearsIndicator(t *testing.T) {
	m, _ := copyNow(t, New(Options{Clipboard: &fakeClipboard{}}))
	require.True(t, m.Copied())

	m = typeText(t, m, "x")
	assert.False(t, m.Copied())
}

func TestQuit(t *testing.T) {
	_, cmd := update(t, New(Options{}), keyPress(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWideLayoutRenders(t *testing.T) {
	m, _ := update(t, New(Options{Initial: model.Example()}), tea.WindowSizeMsg{Width: 140, Height: 50})
	v := m.View()
	assert.Contains(t, v, "Business Name")
	assert.Contains(t, v, "Key Observations")
	assert.Contains(t, v, observationsHint)
}
