package composer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/quill/internal/commands"
)

// testHarness wires a controller to a scheduler that never sleeps and a
// consumer that records every submission.
type testHarness struct {
	ctrl   *Controller
	sent   []Submission
	delays []time.Duration
}

func (h *testHarness) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	h.delays = append(h.delays, d)
	return func() tea.Msg {
		return fn(time.Now())
	}
}

// newTestHarness creates a controller over the default catalog.
func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	return newTestHarnessWithCatalog(t, commands.Default())
}

func newTestHarnessWithCatalog(t *testing.T, catalog *commands.Catalog) *testHarness {
	t.Helper()

	h := &testHarness{}
	names := []string{"a", "b", "c", "d", "e"}
	next := 0
	h.ctrl = NewController(Options{
		Catalog:     catalog,
		Placeholder: "Ask a question...",
		OnSend: func(s Submission) {
			h.sent = append(h.sent, s)
		},
		Scheduler: h.schedule,
		NameFunc: func() string {
			name := names[next%len(names)]
			next++
			return name
		},
	})
	return h
}

// press routes a key with no modifiers.
func (h *testHarness) press(key Key) (bool, tea.Cmd) {
	return h.ctrl.HandleKey(key, Modifiers{})
}
