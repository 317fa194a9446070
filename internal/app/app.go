package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/quill/internal/commands"
	"github.com/renato0307/quill/internal/components"
	"github.com/renato0307/quill/internal/components/composer"
	"github.com/renato0307/quill/internal/components/notifier"
	"github.com/renato0307/quill/internal/keyboard"
	"github.com/renato0307/quill/internal/logging"
	"github.com/renato0307/quill/internal/messages"
	"github.com/renato0307/quill/internal/types"
	"github.com/renato0307/quill/internal/ui"
)

// AppName is shown in the header.
const AppName = "quill"

// Options configures the app model.
type Options struct {
	Theme       *ui.Theme
	Catalog     *commands.Catalog
	Placeholder string
	Clipboard   func(string) error // nil uses the system clipboard
	Scheduler   notifier.Scheduler // nil uses tea.Tick
	Now         func() time.Time   // nil uses time.Now
}

type Model struct {
	state      types.AppState
	header     *components.Header
	layout     *components.Layout
	transcript *components.Transcript
	viewport   viewport.Model
	composer   *composer.Model
	statusBar  *components.StatusBar
	keys       *keyboard.Keys
	theme      *ui.Theme
	copy       func(string) error
	log        *logging.Logger
}

func NewModel(opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = ui.GetTheme(ui.DefaultThemeName)
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	log := logging.Component("app")
	keys := keyboard.GetKeys()
	transcript := components.NewTranscript()
	header := components.NewHeader(theme, AppName)

	ctrl := composer.NewController(composer.Options{
		Catalog:     opts.Catalog,
		Placeholder: opts.Placeholder,
		Scheduler:   opts.Scheduler,
		OnSend: func(s composer.Submission) {
			entry := types.TranscriptEntry{
				Text:    s.Text,
				Command: s.Command,
				SentAt:  now(),
			}
			for _, a := range s.Attachments {
				entry.Attachments = append(entry.Attachments, a.Name)
			}
			transcript.Add(entry)
			header.SetMessageCount(transcript.Count())
			header.SetLastSent(entry.SentAt)
			log.Debug("Transcript updated", "entries", transcript.Count())
		},
	})

	vp := viewport.New(composer.DefaultWidth, components.MinTranscriptHeight)
	// The composer owns the arrow keys
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	m := Model{
		state: types.AppState{
			Width:  composer.DefaultWidth,
			Height: 24,
		},
		header:     header,
		layout:     components.NewLayout(composer.DefaultWidth, 24),
		transcript: transcript,
		viewport:   vp,
		composer:   composer.New(ctrl, theme, keys),
		statusBar:  components.NewStatusBar(theme, notifier.WithScheduler(opts.Scheduler)),
		keys:       keys,
		theme:      theme,
		copy:       copyFn,
		log:        log,
	}
	m.refreshTranscript()
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.composer.Init()
}

// Composer returns the composer view.
func (m Model) Composer() *composer.Model {
	return m.composer
}

// Transcript returns the sent messages.
func (m Model) Transcript() *components.Transcript {
	return m.transcript
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.composer.SetWidth(msg.Width)
		m.resize()
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case types.StatusMsg:
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(msg)
		return m, cmd

	case notifier.ClearMsg:
		// Each notifier ignores clears that are not its own
		m.statusBar, _ = m.statusBar.Update(msg)
		m.composer, _ = m.composer.Update(msg)
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// handleKeyMsg handles global shortcuts and hands the rest to the composer.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("Quit requested", "messages", m.transcript.Count())
		return m, tea.Quit
	case key.Matches(msg, m.keys.CopyLast):
		return m, m.copyLast()
	case key.Matches(msg, m.viewport.KeyMap.PageUp, m.viewport.KeyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	sent := m.transcript.Count()
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	if m.transcript.Count() != sent {
		m.refreshTranscript()
	}
	m.resize()
	return m, cmd
}

// copyLast puts the newest sent message on the clipboard.
func (m Model) copyLast() tea.Cmd {
	last, ok := m.transcript.Last()
	if !ok {
		return messages.InfoCmd("Nothing to copy yet")
	}

	if err := m.copy(last.Text); err != nil {
		m.log.Error("Clipboard write failed", "error", err)
		return messages.ErrorCmd("Copy failed: %v", err)
	}
	return messages.SuccessCmd("Copied last message (%d chars)", len(last.Text))
}

// resize gives the transcript whatever height the other sections leave.
func (m *Model) resize() {
	composerHeight := lipgloss.Height(m.composer.View())
	m.viewport.Width = m.state.Width
	m.viewport.Height = m.layout.CalculateBodyHeight(
		m.header.GetHeight(), composerHeight, m.statusBar.GetHeight())
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.transcript.Render(m.theme, m.state.Width))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	body := strings.TrimRight(m.viewport.View(), "\n")
	return m.layout.Render(m.header.View(), body, m.composer.View(), m.statusBar.View())
}
