// Package testutil drives a full Bubble Tea program for end-to-end tests.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// settle is how long to wait for a message to go through Update and View.
const settle = 50 * time.Millisecond

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	final   tea.Model
	t       *testing.T
}

// syncBuffer lets the test read what the renderer is writing
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idleInput never produces keys; everything is sent with Send
type idleInput struct{}

func (idleInput) Read(p []byte) (int, error) {
	time.Sleep(settle)
	return 0, io.EOF
}

// NewTestProgram starts model in the background with the given window size.
// The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(idleInput{}),
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		final, err := p.Run()
		if err != nil {
			t.Logf("Program error: %v", err)
		}
		tp.final = final
	}()

	time.Sleep(settle)
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	t.Cleanup(tp.Quit)
	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// Press sends key presses in order
func (tp *TestProgram) Press(keys ...tea.KeyType) {
	for _, k := range keys {
		tp.Send(tea.KeyMsg{Type: k})
	}
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// AssertEventually fails the test if needle is not rendered within timeout
func (tp *TestProgram) AssertEventually(needle string, timeout time.Duration) {
	tp.t.Helper()
	assert.True(tp.t, tp.WaitForOutput(needle, timeout), "output never contained %q\nGot:\n%s", needle, tp.Output())
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()
	assert.Contains(tp.t, tp.Output(), expected)
}

// AssertNotContains checks if output does NOT contain text
func (tp *TestProgram) AssertNotContains(notExpected string) {
	tp.t.Helper()
	assert.NotContains(tp.t, tp.Output(), notExpected)
}

// Quit stops the program and waits for it to exit
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(2 * time.Second):
		tp.t.Log("program did not exit in time")
	}
}

// FinalModel returns the model after the program exited
func (tp *TestProgram) FinalModel() tea.Model {
	<-tp.done
	return tp.final
}
