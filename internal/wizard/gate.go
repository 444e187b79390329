package wizard

import (
	"errors"
	"strings"

	"github.com/mark3labs/sitewizard/internal/site"
)

// Gate failures, shown inline next to the blocked transition.
var (
	ErrNoAnalysis    = errors.New("analyze a page before configuring the site")
	ErrMissingName   = errors.New("site name is required")
	ErrMissingDomain = errors.New("domain is required")
	ErrDelayRange    = errors.New("request delay must be between 0.5 and 10 seconds")
)

// CanEnterConfigure reports whether the configure step may be entered.
func CanEnterConfigure(s State) bool {
	return s.Analysis != nil
}

// CanEnterTest reports whether cfg is complete enough to be tested.
func CanEnterTest(cfg site.Config) bool {
	return len(TestGateErrors(cfg)) == 0
}

// TestGateErrors lists every reason cfg cannot enter the test step.
func TestGateErrors(cfg site.Config) []error {
	var errs []error
	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if strings.TrimSpace(cfg.Domain) == "" {
		errs = append(errs, ErrMissingDomain)
	}
	if !site.DelayInRange(cfg.RequestDelay) {
		errs = append(errs, ErrDelayRange)
	}
	return errs
}

// gateError returns the reason the wizard cannot leave its current step, or
// nil when Advance would succeed.
func gateError(s State) error {
	switch s.Step {
	case StepAnalyze:
		if !CanEnterConfigure(s) {
			return site.Invalid("", ErrNoAnalysis)
		}
	case StepConfigure:
		if errs := TestGateErrors(s.Config); len(errs) > 0 {
			return site.Invalid("", errors.Join(errs...))
		}
	}
	return nil
}
