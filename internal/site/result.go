package site

import "sort"

// TestResult is the response of the test-configuration operation. A new test
// replaces the previous result entirely.
type TestResult struct {
	Success        bool           `json:"test_successful"`
	ExtractedData  map[string]any `json:"extracted_data"`
	ResponseTimeMS *int           `json:"response_time_ms,omitempty"`
	Issues         []string       `json:"issues"`
	Suggestions    []string       `json:"suggestions"`
	HTTPStatus     *int           `json:"http_status_code,omitempty"`
}

// ExtractedFields returns the extracted keys sorted by name.
func (r *TestResult) ExtractedFields() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.ExtractedData))
	for k := range r.ExtractedData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CreateResult is the response of the create-site operation.
type CreateResult struct {
	Message string `json:"message"`
	SiteID  int64  `json:"site_id"`
	Domain  string `json:"domain"`
}
