package site

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
)

// Severity of a lint finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is an advisory remark about one field's selector. Findings never
// block a step transition; the test run is the authority.
type Finding struct {
	Field    string
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Lint checks each selector in order: empty selectors are warnings, selectors
// that do not compile as CSS are errors.
func (s *SelectorMap) Lint() []Finding {
	var findings []Finding
	for _, e := range s.Entries() {
		sel := strings.TrimSpace(e.Selector)
		if sel == "" {
			findings = append(findings, Finding{
				Field:    e.Field,
				Severity: SeverityWarning,
				Message:  "no selector set",
			})
			continue
		}
		if _, err := cascadia.Compile(sel); err != nil {
			findings = append(findings, Finding{
				Field:    e.Field,
				Severity: SeverityError,
				Message:  fmt.Sprintf("invalid CSS selector: %v", err),
			})
		}
	}
	return findings
}

// FindingFor returns the first finding for field, if any.
func FindingFor(findings []Finding, field string) (Finding, bool) {
	for _, f := range findings {
		if f.Field == field {
			return f, true
		}
	}
	return Finding{}, false
}
