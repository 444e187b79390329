package testfixtures

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent assertions across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// CmdTimeout bounds how long Collect waits for a single command. Commands
// that sleep (ticks, cursor blinks, toast timers) are dropped.
const CmdTimeout = 200 * time.Millisecond

// Plain strips ANSI sequences so rendered output can be matched as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Contains reports whether the rendered string s contains substr once
// styling is removed.
func Contains(s, substr string) bool {
	return strings.Contains(Plain(s), substr)
}

// Key builds a key press for a special key such as tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Ctrl builds a ctrl+<r> key press.
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// Runes builds one key press per rune of text.
func Runes(text string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// Collect runs cmd and returns the messages it produces, expanding batches.
// Commands that do not finish within CmdTimeout are abandoned.
func Collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if msg == nil {
			return nil
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, Collect(t, c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(CmdTimeout):
		return nil
	}
}
