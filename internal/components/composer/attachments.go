package composer

import (
	"fmt"

	"github.com/google/uuid"
)

// AttachmentList is an ordered list of attachments.
type AttachmentList struct {
	items []Attachment
}

// NewAttachmentList creates an empty list.
func NewAttachmentList() *AttachmentList {
	return &AttachmentList{items: []Attachment{}}
}

// GenerateAttachmentName returns a unique placeholder file name.
func GenerateAttachmentName() string {
	return fmt.Sprintf("file-%s.pdf", uuid.NewString()[:8])
}

// Attach appends an attachment with the given name.
func (l *AttachmentList) Attach(name string) Attachment {
	a := Attachment{Name: name}
	l.items = append(l.items, a)
	return a
}

// Remove deletes the attachment at index, keeping the order of the rest.
// Returns false, changing nothing, when index is out of range.
func (l *AttachmentList) Remove(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index:index], l.items[index+1:]...)
	return true
}

// Items returns a copy of the attachments in insertion order.
func (l *AttachmentList) Items() []Attachment {
	items := make([]Attachment, len(l.items))
	copy(items, l.items)
	return items
}

// Len returns the number of attachments.
func (l *AttachmentList) Len() int {
	return len(l.items)
}

// IsEmpty returns true if there are no attachments.
func (l *AttachmentList) IsEmpty() bool {
	return len(l.items) == 0
}
