package composer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/renato0307/quill/internal/commands"
	"github.com/renato0307/quill/internal/components/notifier"
	"github.com/renato0307/quill/internal/logging"
)

// Options configures a Controller.
type Options struct {
	Catalog     *commands.Catalog  // nil uses commands.Default()
	Placeholder string             // Hint shown while the buffer is empty
	OnSend      SendFunc           // Receives every valid submission
	Scheduler   notifier.Scheduler // nil uses tea.Tick
	NameFunc    func() string      // Attachment names, nil uses GenerateAttachmentName
}

// Controller owns the composer state: text buffer, palette, attachments and
// the transient indicators. All mutations happen on the Bubble Tea update
// goroutine; timers come back as notifier.ClearMsg through Update.
type Controller struct {
	id          string
	catalog     *commands.Catalog
	placeholder string
	onSend      SendFunc
	nameFunc    func() string

	text        string
	paletteOpen bool
	active      int

	attachments *AttachmentList
	history     *History
	recent      *notifier.Notifier[string]
	pulse       *notifier.Notifier[bool]

	log *logging.Logger
}

// NewController creates a controller with an empty buffer and closed palette.
func NewController(opts Options) *Controller {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = commands.Default()
	}
	nameFunc := opts.NameFunc
	if nameFunc == nil {
		nameFunc = GenerateAttachmentName
	}

	id := uuid.NewString()
	sched := notifier.WithScheduler(opts.Scheduler)

	return &Controller{
		id:          id,
		catalog:     catalog,
		placeholder: opts.Placeholder,
		onSend:      opts.OnSend,
		nameFunc:    nameFunc,
		active:      -1,
		attachments: NewAttachmentList(),
		history:     NewHistory(),
		recent:      notifier.New[string](id+"/recent", RecentCommandDuration, sched),
		pulse:       notifier.New[bool](id+"/pulse", TypingPulseDuration, sched),
		log:         logging.Component("composer").With("instance", id[:8]),
	}
}

// ID returns the controller instance identifier.
func (c *Controller) ID() string {
	return c.id
}

// Catalog returns the suggestion catalog.
func (c *Controller) Catalog() *commands.Catalog {
	return c.catalog
}

// Placeholder returns the empty-buffer hint.
func (c *Controller) Placeholder() string {
	return c.placeholder
}

// Text returns the current buffer.
func (c *Controller) Text() string {
	return c.text
}

// PaletteOpen returns true while the suggestion palette is visible.
func (c *Controller) PaletteOpen() bool {
	return c.paletteOpen
}

// ActiveIndex returns the highlighted suggestion, -1 for none.
func (c *Controller) ActiveIndex() int {
	return c.active
}

// SetText replaces the buffer and recomputes the palette from it.
// Every text mutation, typed or programmatic, goes through here.
func (c *Controller) SetText(text string) {
	c.text = text
	c.paletteOpen, c.active = Match(text, c.catalog)
}

// EditText applies text typed by the user. A recalled history entry that is
// edited becomes a draft, so history keys no longer replace it.
func (c *Controller) EditText(text string) {
	c.history.Reset()
	c.SetText(text)
}

// SelectSuggestion commits the suggestion at index: the buffer becomes its
// prefix plus a space, the palette closes and the label is shown as the
// recent command. Out of range indexes are ignored.
func (c *Controller) SelectSuggestion(index int) tea.Cmd {
	s, ok := c.catalog.At(index)
	if !ok {
		return nil
	}

	c.SetText(s.Prefix + " ")
	c.paletteOpen = false
	c.active = -1
	c.history.Reset()

	c.log.Debug("Suggestion committed", "prefix", s.Prefix, "label", s.Label)
	return c.recent.Post(s.Label)
}

// TogglePalette opens the palette on an empty buffer by typing "/", and
// closes it when open. A non-command buffer is left alone.
func (c *Controller) TogglePalette() {
	switch {
	case c.paletteOpen:
		c.dismiss()
	case c.text == "":
		c.SetText("/")
	case InCommandContext(c.text):
		c.SetText(c.text)
	}
}

// AttachFile appends an attachment with a generated name.
func (c *Controller) AttachFile() Attachment {
	a := c.attachments.Attach(c.nameFunc())
	c.log.Debug("Attachment added", "name", a.Name, "count", c.attachments.Len())
	return a
}

// RemoveAttachment removes the attachment at index.
// Returns false when index is out of range.
func (c *Controller) RemoveAttachment(index int) bool {
	ok := c.attachments.Remove(index)
	if ok {
		c.log.Debug("Attachment removed", "index", index, "count", c.attachments.Len())
	}
	return ok
}

// Attachments returns a copy of the attachments in order.
func (c *Controller) Attachments() []Attachment {
	return c.attachments.Items()
}

// RecentCommand returns the label of the last committed suggestion while it
// is still visible.
func (c *Controller) RecentCommand() (string, bool) {
	return c.recent.Value()
}

// TypingPulse returns true during the short pulse after a send.
func (c *Controller) TypingPulse() bool {
	on, _ := c.pulse.Value()
	return on
}

// HistoryPrev recalls an older sent message. Ignored while the palette is
// open since arrows and recall would fight over the same buffer.
func (c *Controller) HistoryPrev() bool {
	if c.paletteOpen {
		return false
	}
	text, ok := c.history.Prev()
	if !ok {
		return false
	}
	c.SetText(text)
	return true
}

// HistoryNext recalls a newer sent message, clearing the buffer after the
// newest one.
func (c *Controller) HistoryNext() bool {
	if c.paletteOpen || !c.history.Recalling() {
		return false
	}
	text, _ := c.history.Next()
	c.SetText(text)
	return true
}

// Update routes timer messages to the notifiers.
// Returns true if msg belonged to this controller.
func (c *Controller) Update(msg tea.Msg) bool {
	return c.recent.Update(msg) || c.pulse.Update(msg)
}

// State returns a snapshot of the composer.
func (c *Controller) State() State {
	recent, hasRecent := c.recent.Value()
	return State{
		Text:          c.text,
		PaletteOpen:   c.paletteOpen,
		ActiveIndex:   c.active,
		Attachments:   c.attachments.Items(),
		RecentCommand: recent,
		HasRecent:     hasRecent,
		RecentGen:     c.recent.Generation(),
		TypingPulse:   c.TypingPulse(),
	}
}

// dismiss hides the palette without touching the buffer. It reopens on the
// next text change that is still in command context.
func (c *Controller) dismiss() {
	c.paletteOpen = false
	c.active = -1
}
