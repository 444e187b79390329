package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Header
	Title       lipgloss.Style
	StepActive  lipgloss.Style
	StepDone    lipgloss.Style
	StepPending lipgloss.Style

	ModalContainer lipgloss.Style

	// Forms
	Label           lipgloss.Style
	LabelFocused    lipgloss.Style
	Text            lipgloss.Style
	Muted           lipgloss.Style
	InputBox        lipgloss.Style
	InputBoxFocused lipgloss.Style

	// Selector table
	RowCursor lipgloss.Style
	FieldName lipgloss.Style
	Selector  lipgloss.Style

	// Status
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Diff
	DiffInsert lipgloss.Style
	DiffDelete lipgloss.Style
	DiffEqual  lipgloss.Style
	DiffHeader lipgloss.Style

	Toast lipgloss.Style
}
