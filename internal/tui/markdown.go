package tui

import (
	"strings"

	"charm.land/glamour/v2"
	"charm.land/glamour/v2/ansi"
	"charm.land/glamour/v2/styles"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/sitewizard/internal/tui/theme"
)

// RenderReport renders a Markdown test report with the report style.
// Falls back to plain text wrapping if rendering fails.
func RenderReport(content string, width int) string {
	width = min(max(width, 20), 120)

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(reportStyle(theme.Current())),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return wrapText(content, width)
	}

	return strings.TrimSuffix(rendered, "\n")
}

// reportStyle is the dark glamour style recoloured from th. The report sits
// inside a bordered pane, so the document margin is dropped, and headings
// lose their hash prefixes.
func reportStyle(th *theme.Theme) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig

	cfg.Document.Margin = uintPtr(0)
	cfg.Document.Color = stringPtr(th.FgBase)

	cfg.H2.Prefix = ""
	cfg.H2.Color = stringPtr(th.Primary)
	cfg.H2.BackgroundColor = nil
	cfg.H2.Bold = boolPtr(true)

	cfg.H3.Prefix = ""
	cfg.H3.Color = stringPtr(th.Secondary)
	cfg.H3.Bold = boolPtr(true)

	cfg.Emph.Color = stringPtr(th.FgMuted)
	cfg.Code.Color = stringPtr(th.Tertiary)
	cfg.Code.BackgroundColor = nil

	cfg.Table.Color = stringPtr(th.FgBase)
	cfg.Table.CenterSeparator = stringPtr("┼")
	cfg.Table.ColumnSeparator = stringPtr("│")
	cfg.Table.RowSeparator = stringPtr("─")
	return cfg
}

// wrapText wraps plain text to width.
func wrapText(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(content)
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func uintPtr(u uint) *uint       { return &u }
