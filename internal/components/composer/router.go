package composer

import tea "github.com/charmbracelet/bubbletea"

// HandleKey routes a key event. consumed is false when the host should apply
// its default behavior (insert characters, move the cursor, new line).
func (c *Controller) HandleKey(key Key, mods Modifiers) (consumed bool, cmd tea.Cmd) {
	if c.paletteOpen {
		return c.handlePaletteKey(key)
	}
	return c.handleComposeKey(key, mods)
}

// handlePaletteKey handles keys while the palette is visible.
func (c *Controller) handlePaletteKey(key Key) (bool, tea.Cmd) {
	n := c.catalog.Len()

	switch key {
	case KeyArrowDown:
		if n > 0 {
			if c.active < 0 {
				c.active = 0
			} else {
				c.active = (c.active + 1) % n
			}
		}
		return true, nil

	case KeyArrowUp:
		if n > 0 {
			if c.active <= 0 {
				c.active = n - 1
			} else {
				c.active--
			}
		}
		return true, nil

	case KeyTab, KeyEnter:
		if c.active < 0 {
			return false, nil
		}
		return true, c.SelectSuggestion(c.active)

	case KeyEscape:
		c.dismiss()
		return true, nil
	}

	return false, nil
}

// handleComposeKey handles keys while the palette is hidden.
func (c *Controller) handleComposeKey(key Key, mods Modifiers) (bool, tea.Cmd) {
	if key != KeyEnter || mods.Shift {
		return false, nil
	}
	return true, c.Submit()
}
