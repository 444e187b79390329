package tui

// TabExitForwardMsg asks the wizard to move focus from the step content to
// the first button.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg asks the wizard to move focus from the step content to
// the last button.
type TabExitBackwardMsg struct{}

// AnalyzeRequestedMsg is sent when the operator submits a URL to analyze.
type AnalyzeRequestedMsg struct {
	URL string
}

// TestRequestedMsg is sent when the operator asks for a test run.
type TestRequestedMsg struct{}

// CreateRequestedMsg is sent when the operator asks to create the site.
type CreateRequestedMsg struct{}

// ExportRequestedMsg is sent when the operator asks to save the
// configuration as YAML.
type ExportRequestedMsg struct{}

// SelectorEditedMsg is sent when the external editor returns with a new
// selector for Field.
type SelectorEditedMsg struct {
	Field string
	Value string
	Err   error
}
