package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mark3labs/sitewizard/internal/site"
)

func TestReport(t *testing.T) {
	ms, status := 812, 200

	t.Run("no result", func(t *testing.T) {
		assert.Contains(t, Report(nil), "No test has been run")
	})

	t.Run("success", func(t *testing.T) {
		out := Report(&site.TestResult{
			Success:        true,
			ExtractedData:  map[string]any{"price": 19.9, "currency": "TRY", "stock_status": nil, "tags": []any{"a|b"}},
			ResponseTimeMS: &ms,
			HTTPStatus:     &status,
		})
		assert.Contains(t, out, "Test passed")
		assert.Contains(t, out, "HTTP 200 · 812 ms")
		assert.Contains(t, out, "| currency | TRY |\n| price | 19.9 |\n| stock_status | — |\n")
		assert.Contains(t, out, `["a\|b"]`)
		assert.NotContains(t, out, "### Issues")
	})

	t.Run("failure with issues", func(t *testing.T) {
		out := Report(&site.TestResult{
			Issues:      []string{"price selector matched nothing"},
			Suggestions: []string{"enable JavaScript rendering"},
		})
		assert.Contains(t, out, "Test failed")
		assert.Contains(t, out, "Nothing was extracted")
		assert.Contains(t, out, "### Issues\n\n- price selector matched nothing\n")
		assert.Contains(t, out, "### Suggestions\n\n- enable JavaScript rendering\n")
	})
}
