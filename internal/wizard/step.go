// Package wizard drives the three-step site onboarding flow: analyze a
// sample page, edit the proposed configuration, then test and create the
// site. It holds no terminal or network code of its own.
package wizard

import "github.com/mark3labs/sitewizard/internal/site"

// Step identifies a wizard step.
type Step int

const (
	StepAnalyze   Step = 1
	StepConfigure Step = 2
	StepTest      Step = 3
)

func (s Step) String() string {
	switch s {
	case StepAnalyze:
		return "Analyze"
	case StepConfigure:
		return "Configure"
	case StepTest:
		return "Test & Save"
	default:
		return "Unknown"
	}
}

// State is everything the wizard knows during one session.
type State struct {
	Step       Step
	Analysis   *site.AnalysisResult // nil until an analysis succeeds
	Config     site.Config
	TestURL    string
	TestResult *site.TestResult // nil until a test returns
}

func newState() State {
	return State{
		Step:   StepAnalyze,
		Config: site.NewConfig(),
	}
}
