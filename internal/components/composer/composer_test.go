package composer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/quill/internal/keyboard"
	"github.com/renato0307/quill/internal/ui"
)

func newTestModel(t *testing.T) (*Model, *testHarness) {
	t.Helper()
	h := newTestHarness(t)
	return New(h.ctrl, ui.GetTheme("charm"), keyboard.Default()), h
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_TypingOpensPalette(t *testing.T) {
	m, h := newTestModel(t)

	m = typeText(m, "/r")

	assert.Equal(t, "/r", m.Value())
	assert.Equal(t, "/r", h.ctrl.Text())
	assert.True(t, h.ctrl.PaletteOpen())
	assert.Equal(t, 1, h.ctrl.ActiveIndex())
	assert.Contains(t, m.View(), "Reasoning")
	assert.Contains(t, m.View(), "▶")
}

func TestModel_TabCommitsIntoTextarea(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "/")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, h.ctrl.ActiveIndex())

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)

	assert.Equal(t, "/reason ", m.Value())
	assert.False(t, h.ctrl.PaletteOpen())
	assert.Contains(t, m.View(), "Reasoning")

	// The recent-command badge clears when its timer message comes back
	m, _ = m.Update(cmd())
	_, ok := h.ctrl.RecentCommand()
	assert.False(t, ok)
}

func TestModel_EnterSends(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "/assist do X")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.Len(t, h.sent, 1)
	assert.Equal(t, "/assist do X", h.sent[0].Text)
	assert.Equal(t, "/assist", h.sent[0].Command)
	assert.Equal(t, "", m.Value())
}

func TestModel_AltEnterInsertsNewLine(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "one")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	m = typeText(m, "two")

	assert.Equal(t, "one\ntwo", m.Value())
	assert.Equal(t, "one\ntwo", h.ctrl.Text())
	assert.Empty(t, h.sent)
}

func TestModel_EscapeKeepsText(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "/r")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "/r", m.Value())
	assert.False(t, h.ctrl.PaletteOpen())
	assert.NotContains(t, m.View(), "▶")

	// Typing again reopens it
	m = typeText(m, "e")
	assert.True(t, h.ctrl.PaletteOpen())
}

func TestModel_ComposerBindings(t *testing.T) {
	m, h := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, []string{"a", "b"}, names(h.ctrl.Attachments()))
	assert.Contains(t, m.View(), "2 b")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, []string{"a"}, names(h.ctrl.Attachments()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.Equal(t, "/", m.Value())
	assert.True(t, h.ctrl.PaletteOpen())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.False(t, h.ctrl.PaletteOpen())
}

func TestModel_RemoveLastOnEmptyList(t *testing.T) {
	m, h := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Nil(t, cmd)
	assert.Empty(t, h.ctrl.Attachments())
}

func TestModel_HistoryRecall(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(m, "hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "hello", m.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "", m.Value())
}

func TestModel_SendHintAndPulse(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "hi")
	m.SetWidth(120)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, h.ctrl.TypingPulse())
	assert.Contains(t, m.View(), "●")

	m, _ = m.Update(cmd())
	assert.False(t, h.ctrl.TypingPulse())
	assert.NotContains(t, m.View(), "●")
}

func TestPaletteWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		active    int
		wantStart int
		wantEnd   int
	}{
		{name: "fits", total: 2, active: 1, wantStart: 0, wantEnd: 2},
		{name: "nothing active", total: 20, active: -1, wantStart: 0, wantEnd: 8},
		{name: "active in first page", total: 20, active: 7, wantStart: 0, wantEnd: 8},
		{name: "active past first page", total: 20, active: 12, wantStart: 5, wantEnd: 13},
		{name: "last", total: 20, active: 19, wantStart: 12, wantEnd: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := paletteWindow(tt.total, tt.active, MaxPaletteItems)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestModel_EditingRecalledEntryKeepsEdits(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(m, "hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "bye")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Equal(t, "hello", m.Value())

	m = typeText(m, "!")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Equal(t, "hello!", m.Value())
}
