package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/quill/internal/commands"
	"github.com/renato0307/quill/internal/types"
	"github.com/renato0307/quill/internal/ui"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

// immediateScheduler fires timers as soon as the command runs.
func immediateScheduler(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Now()) }
}

func newTestModel(t *testing.T, clip *fakeClipboard) Model {
	t.Helper()
	m := NewModel(Options{
		Theme:       ui.GetTheme("charm"),
		Catalog:     commands.Default(),
		Placeholder: "Ask a question...",
		Clipboard:   clip.write,
		Scheduler:   immediateScheduler,
		Now: func() time.Time {
			return time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)
		},
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	view := m.View()

	assert.Contains(t, view, "quill")
	assert.Contains(t, view, "No messages yet")
	assert.Contains(t, view, "Ask a question...")
}

func TestModel_SendAddsToTranscript(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = typeText(t, m, "/r")
	assert.Contains(t, m.View(), "Reasoning")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "why is the sky blue")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	require.Equal(t, 1, m.Transcript().Count())
	last, _ := m.Transcript().Last()
	assert.Equal(t, "/reason why is the sky blue", last.Text)
	assert.Equal(t, "/reason", last.Command)

	view := m.View()
	assert.Contains(t, view, "why is the sky blue")
	assert.Contains(t, view, "09:30:00")
	assert.Contains(t, view, "1 message")
	assert.Equal(t, "", m.Composer().Value())
}

func TestModel_SendCarriesAttachments(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m = typeText(t, m, "see attached")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	last, ok := m.Transcript().Last()
	require.True(t, ok)
	assert.Len(t, last.Attachments, 1)
	assert.Regexp(t, `^file-[0-9a-f]{8}\.pdf$`, last.Attachments[0])
}

func TestModel_BlankEnterDoesNothing(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = typeText(t, m, "   ")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.Transcript().Count())
}

func TestModel_CopyLast(t *testing.T) {
	tests := []struct {
		name     string
		send     string
		clipErr  error
		wantType types.MessageType
		wantText string
		wantClip string
	}{
		{name: "nothing sent", wantType: types.MessageTypeInfo, wantText: "Nothing to copy yet"},
		{name: "copies last", send: "hello", wantType: types.MessageTypeSuccess, wantText: "Copied last message (5 chars)", wantClip: "hello"},
		{name: "clipboard error", send: "hello", clipErr: errors.New("no display"), wantType: types.MessageTypeError, wantText: "Copy failed: no display"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &fakeClipboard{err: tt.clipErr}
			m := newTestModel(t, clip)
			if tt.send != "" {
				m = typeText(t, m, tt.send)
				m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			}

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
			require.NotNil(t, cmd)

			status, ok := cmd().(types.StatusMsg)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, status.Type)
			assert.Equal(t, tt.wantText, status.Message)
			assert.Equal(t, tt.wantClip, clip.text)

			// The status bar shows it, then its timer clears it
			m, cmd = update(t, m, status)
			assert.Contains(t, m.View(), tt.wantText)
			require.NotNil(t, cmd)
			m, _ = update(t, m, cmd())
			assert.NotContains(t, m.View(), tt.wantText)
		})
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 60, m.state.Width)
	assert.Equal(t, 20, m.state.Height)
	assert.Equal(t, 60, m.viewport.Width)
	assert.GreaterOrEqual(t, m.viewport.Height, 3)
}

func TestModel_RecentCommandClears(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m = typeText(t, m, "/a")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	label, ok := m.Composer().Controller().RecentCommand()
	require.True(t, ok)
	assert.Equal(t, "Assistant", label)

	m, _ = update(t, m, cmd())
	_, ok = m.Composer().Controller().RecentCommand()
	assert.False(t, ok)
}
