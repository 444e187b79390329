package tui

import (
	"strings"

	"github.com/mark3labs/sitewizard/internal/tui/theme"
)

// Standard key representations for consistent hints across the wizard.
const (
	KeyUpDown   = "↑/↓"
	KeyEnter    = "enter"
	KeySpace    = "space"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyCtrlC    = "ctrl+c"
	KeyCtrlE    = "ctrl+e"
	KeyCtrlN    = "ctrl+n"
	KeyCtrlO    = "ctrl+o"
	KeyCtrlP    = "ctrl+p"
	KeyCtrlS    = "ctrl+s"
	KeyPgUpDown = "pgup/pgdn"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Example: RenderHintBar("↑/↓", "move", "enter", "edit", "esc", "back")
// Returns: "↑/↓ move • enter edit • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, s.HintKey.Render(pairs[i])+" "+s.HintDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, " "+s.HintSeparator.Render("•")+" ")
}
