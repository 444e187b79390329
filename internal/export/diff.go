package export

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/mark3labs/sitewizard/internal/site"
)

// Diff returns a unified diff from suggested to current, one "field: selector"
// line per entry. It is empty when both maps are equal.
func Diff(suggested, current *site.SelectorMap) string {
	return udiff.Unified("suggested", "current", selectorLines(suggested), selectorLines(current))
}

func selectorLines(s *site.SelectorMap) string {
	var b strings.Builder
	for _, e := range s.Entries() {
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Selector)
		b.WriteString("\n")
	}
	return b.String()
}
