package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mark3labs/sitewizard/internal/tui/theme"
)

// ButtonID names the action a button triggers.
type ButtonID int

const (
	ButtonCancel ButtonID = iota
	ButtonBack
	ButtonAnalyze
	ButtonNext
	ButtonRunTest
	ButtonCreate
)

// Button represents a single button in the button bar.
type Button struct {
	ID       ButtonID
	Label    string
	Disabled bool
}

// ButtonBar manages a row of buttons and which of them has focus.
type ButtonBar struct {
	buttons []Button
	focus   int // -1 when the bar is not focused
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetButtons replaces the buttons, keeping focus on the same ID when it is
// still present and enabled.
func (b *ButtonBar) SetButtons(buttons []Button) {
	var focused ButtonID
	hadFocus := b.Focused()
	if hadFocus {
		focused = b.buttons[b.focus].ID
	}

	b.buttons = buttons
	b.focus = -1
	if !hadFocus {
		return
	}
	for i, btn := range buttons {
		if btn.ID == focused && !btn.Disabled {
			b.focus = i
			return
		}
	}
	b.FocusFirst()
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Focused reports whether a button has focus.
func (b *ButtonBar) Focused() bool {
	return b.focus >= 0 && b.focus < len(b.buttons)
}

// FocusedButton returns the focused button ID.
func (b *ButtonBar) FocusedButton() (ButtonID, bool) {
	if !b.Focused() {
		return 0, false
	}
	return b.buttons[b.focus].ID, true
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	b.focus = -1
	return b.FocusNext()
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	b.focus = len(b.buttons)
	return b.FocusPrev()
}

// FocusNext moves focus to the next enabled button. Returns false, leaving
// the bar unfocused, when there is none.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focus + 1; i < len(b.buttons); i++ {
		if !b.buttons[i].Disabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// FocusPrev moves focus to the previous enabled button. Returns false,
// leaving the bar unfocused, when there is none.
func (b *ButtonBar) FocusPrev() bool {
	for i := b.focus - 1; i >= 0; i-- {
		if !b.buttons[i].Disabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

// Render renders the button bar centered within its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		switch {
		case btn.Disabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case i == b.focus:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}
