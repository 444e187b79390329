package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/sitewizard/internal/site"
)

// Report renders a test result as Markdown.
func Report(r *site.TestResult) string {
	if r == nil {
		return "_No test has been run yet._\n"
	}

	var b strings.Builder
	if r.Success {
		b.WriteString("## ✓ Test passed\n\n")
	} else {
		b.WriteString("## ✗ Test failed\n\n")
	}

	var meta []string
	if r.HTTPStatus != nil {
		meta = append(meta, fmt.Sprintf("HTTP %d", *r.HTTPStatus))
	}
	if r.ResponseTimeMS != nil {
		meta = append(meta, fmt.Sprintf("%d ms", *r.ResponseTimeMS))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " · "))
		b.WriteString("\n\n")
	}

	b.WriteString("### Extracted data\n\n")
	fields := r.ExtractedFields()
	if len(fields) == 0 {
		b.WriteString("_Nothing was extracted._\n\n")
	} else {
		b.WriteString("| Field | Value |\n|-------|-------|\n")
		for _, f := range fields {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(f), escapeCell(formatValue(r.ExtractedData[f])))
		}
		b.WriteString("\n")
	}

	writeList(&b, "Issues", r.Issues)
	writeList(&b, "Suggestions", r.Suggestions)
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "—"
	case string:
		return v
	case float64, bool, int, int64:
		return fmt.Sprint(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
