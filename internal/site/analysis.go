package site

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SuggestedConfig is the configuration the analysis proposes. Every field is
// optional; keys the wizard does not model are kept in Extra.
type SuggestedConfig struct {
	Name          *string
	Domain        *string
	UseJavaScript *bool
	RequiresProxy *bool
	RequestDelay  *float64
	Headers       map[string]string
	Extra         map[string]json.RawMessage
}

// UnmarshalJSON splits known keys into typed fields and the rest into Extra.
func (s *SuggestedConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding suggested_config: %w", err)
	}

	known := []struct {
		key  string
		dest any
	}{
		{"name", &s.Name},
		{"domain", &s.Domain},
		{"use_javascript", &s.UseJavaScript},
		{"requires_proxy", &s.RequiresProxy},
		{"request_delay", &s.RequestDelay},
		{"headers", &s.Headers},
	}
	for _, k := range known {
		v, ok := raw[k.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, k.dest); err != nil {
			return fmt.Errorf("decoding suggested_config.%s: %w", k.key, err)
		}
		delete(raw, k.key)
	}

	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

// AnalysisResult is the response of the analyze-site operation.
type AnalysisResult struct {
	Domain             string
	SuggestedName      string
	RequiresJavaScript bool
	SuggestedConfig    SuggestedConfig
	// SuggestedSelectors keeps the service's field order.
	SuggestedSelectors *orderedmap.OrderedMap[string, []string]
	AnalysisSuccessful bool
}

type analysisWire struct {
	Domain             string          `json:"domain"`
	SiteName           string          `json:"site_name"`
	SuggestedConfig    json.RawMessage `json:"suggested_config"`
	SuggestedSelectors json.RawMessage `json:"suggested_selectors"`
	RequiresJavaScript bool            `json:"requires_javascript"`
	AnalysisSuccessful bool            `json:"analysis_successful"`
}

// UnmarshalJSON decodes the wire format.
func (a *AnalysisResult) UnmarshalJSON(data []byte) error {
	var w analysisWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	a.Domain = w.Domain
	a.SuggestedName = w.SiteName
	a.RequiresJavaScript = w.RequiresJavaScript
	a.AnalysisSuccessful = w.AnalysisSuccessful

	a.SuggestedConfig = SuggestedConfig{}
	if len(w.SuggestedConfig) > 0 && string(w.SuggestedConfig) != "null" {
		if err := json.Unmarshal(w.SuggestedConfig, &a.SuggestedConfig); err != nil {
			return err
		}
	}

	a.SuggestedSelectors = orderedmap.New[string, []string]()
	if len(w.SuggestedSelectors) > 0 && string(w.SuggestedSelectors) != "null" {
		if err := json.Unmarshal(w.SuggestedSelectors, a.SuggestedSelectors); err != nil {
			return fmt.Errorf("decoding suggested_selectors: %w", err)
		}
	}
	return nil
}

// SuggestedFields returns the fields the analysis proposed, in order.
func (a *AnalysisResult) SuggestedFields() []string {
	if a == nil || a.SuggestedSelectors == nil {
		return nil
	}
	fields := make([]string, 0, a.SuggestedSelectors.Len())
	for p := a.SuggestedSelectors.Oldest(); p != nil; p = p.Next() {
		fields = append(fields, p.Key)
	}
	return fields
}

// Candidates returns the proposed selectors for field, best first.
func (a *AnalysisResult) Candidates(field string) []string {
	if a == nil || a.SuggestedSelectors == nil {
		return nil
	}
	c, _ := a.SuggestedSelectors.Get(field)
	return c
}
