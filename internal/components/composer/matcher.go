package composer

import (
	"strings"
	"unicode"

	"github.com/renato0307/quill/internal/commands"
)

// InCommandContext reports whether text should show the palette:
// non-empty, starting with "/" and free of whitespace.
func InCommandContext(text string) bool {
	return strings.HasPrefix(text, "/") && !strings.ContainsFunc(text, unicode.IsSpace)
}

// Match computes palette visibility and the active suggestion for text.
// The active suggestion is the first catalog entry, in declared order, whose
// prefix starts with text; -1 when none does or the palette is closed.
func Match(text string, catalog *commands.Catalog) (open bool, active int) {
	if !InCommandContext(text) {
		return false, -1
	}
	if catalog == nil {
		return true, -1
	}
	return true, catalog.IndexWithPrefix(text)
}
