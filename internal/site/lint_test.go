package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint(t *testing.T) {
	m, err := FromEntries([]Entry{
		{Field: "price", Selector: "div.price > span"},
		{Field: "currency", Selector: ""},
		{Field: "stock_status", Selector: "div[data-stock"},
		{Field: "product_name", Selector: "h1, .title"},
	})
	require.NoError(t, err)

	findings := m.Lint()
	require.Len(t, findings, 2)

	assert.Equal(t, "currency", findings[0].Field)
	assert.Equal(t, SeverityWarning, findings[0].Severity)

	assert.Equal(t, "stock_status", findings[1].Field)
	assert.Equal(t, SeverityError, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "invalid CSS selector")

	f, ok := FindingFor(findings, "stock_status")
	require.True(t, ok)
	assert.Equal(t, "error", f.Severity.String())

	_, ok = FindingFor(findings, "price")
	assert.False(t, ok)
}
