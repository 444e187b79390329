package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// sanitizePaste turns pasted content into a single input line: escape
// sequences and control characters are dropped, runs of whitespace
// (including newlines) collapse to one space, and the ends are trimmed.
func sanitizePaste(content string) string {
	content = ansi.Strip(content)

	var b strings.Builder
	space := false
	for _, r := range content {
		switch {
		case r == '\n' || r == '\r' || r == '\t' || r == ' ':
			space = true
			continue
		case r < 32 || r == 127:
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// cleanPaste sanitizes a paste before it reaches a text input.
func cleanPaste(msg tea.PasteMsg) tea.PasteMsg {
	return tea.PasteMsg{Content: sanitizePaste(msg.Content)}
}
