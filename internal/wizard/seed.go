package wizard

import (
	"maps"

	"github.com/mark3labs/sitewizard/internal/site"
)

// Seed builds the starting configuration from an analysis. Suggested config
// values win over the top-level analysis fields; unset values fall back to
// the defaults of site.NewConfig. The selector map starts from the default
// template and takes the first candidate of every suggested field that has
// one. Template fields keep their position; other fields are appended in
// suggestion order.
func Seed(a *site.AnalysisResult) site.Config {
	cfg := site.NewConfig()
	if a == nil {
		return cfg
	}
	sc := a.SuggestedConfig

	cfg.Name = a.SuggestedName
	if sc.Name != nil {
		cfg.Name = *sc.Name
	}
	cfg.Domain = a.Domain
	if sc.Domain != nil {
		cfg.Domain = *sc.Domain
	}
	if sc.UseJavaScript != nil {
		cfg.UseJavaScript = *sc.UseJavaScript
	}
	if sc.RequiresProxy != nil {
		cfg.RequiresProxy = *sc.RequiresProxy
	}
	if sc.RequestDelay != nil {
		cfg.RequestDelay = *sc.RequestDelay
	}
	if len(sc.Headers) > 0 {
		cfg.Headers = maps.Clone(sc.Headers)
	}

	cfg.Selectors = site.DefaultSelectorMap()
	for _, field := range a.SuggestedFields() {
		candidates := a.Candidates(field)
		if len(candidates) == 0 {
			continue
		}
		// Put only fails on blank names, which carry nothing to seed.
		_ = cfg.Selectors.Put(field, candidates[0])
	}
	return cfg
}

// NextCandidate returns the candidate after current in the analysis list for
// field, wrapping around. A current value that is not a candidate yields the
// first one. ok is false when the field has no candidates.
func NextCandidate(a *site.AnalysisResult, field, current string) (string, bool) {
	candidates := a.Candidates(field)
	if len(candidates) == 0 {
		return "", false
	}
	for i, c := range candidates {
		if c == current {
			return candidates[(i+1)%len(candidates)], true
		}
	}
	return candidates[0], true
}
