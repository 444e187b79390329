package wizard

import "github.com/mark3labs/sitewizard/internal/site"

// Msg is a completion produced by an Op and folded into state by
// Controller.Apply.
type Msg interface {
	wizardMsg()
}

// Op performs one remote round trip and reports its completion. Ops are
// safe to run off the caller's goroutine; their result must be passed back
// to Apply on it.
type Op func() Msg

// AnalyzeDoneMsg completes an analyze request.
type AnalyzeDoneMsg struct {
	URL    string
	Result *site.AnalysisResult
	Err    error
}

// TestDoneMsg completes a test request.
type TestDoneMsg struct {
	Result *site.TestResult
	Err    error
}

// CreateDoneMsg completes a create request.
type CreateDoneMsg struct {
	Domain string // domain that was submitted
	Result *site.CreateResult
	Err    error
}

func (AnalyzeDoneMsg) wizardMsg() {}
func (TestDoneMsg) wizardMsg()    {}
func (CreateDoneMsg) wizardMsg()  {}
