package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Borders
	BorderDefault string
	BorderFocused string

	// Diff colors
	DiffInsertBg string
	DiffDeleteBg string
	DiffEqualBg  string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

var (
	current   *Theme
	currentMu sync.RWMutex
)

// Current returns the active theme, Catppuccin Mocha unless replaced.
func Current() *Theme {
	currentMu.RLock()
	t := current
	currentMu.RUnlock()
	if t != nil {
		return t
	}

	currentMu.Lock()
	defer currentMu.Unlock()
	if current == nil {
		current = NewCatppuccinMocha()
	}
	return current
}

// SetCurrent replaces the active theme.
func SetCurrent(t *Theme) {
	currentMu.Lock()
	current = t
	currentMu.Unlock()
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),
		StepActive: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Primary)).
			Bold(true).
			Padding(0, 1),
		StepDone: lipgloss.NewStyle().
			Foreground(c(t.Success)).
			Padding(0, 1),
		StepPending: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Padding(0, 1),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.BorderFocused)).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(c(t.FgSubtle)).
			Width(16),
		LabelFocused: lipgloss.NewStyle().
			Foreground(c(t.Secondary)).
			Bold(true).
			Width(16),
		Text:  lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted: lipgloss.NewStyle().Foreground(c(t.FgMuted)),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.BorderDefault)).
			Padding(0, 1),
		InputBoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.BorderFocused)).
			Padding(0, 1),

		RowCursor: lipgloss.NewStyle().
			Background(c(t.BgSurface0)).
			Foreground(c(t.FgBright)),
		FieldName: lipgloss.NewStyle().
			Foreground(c(t.Tertiary)),
		Selector: lipgloss.NewStyle().
			Foreground(c(t.FgBase)),

		Success: lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(c(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(c(t.Error)).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(c(t.Info)),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgSurface2)),

		ButtonNormal: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)).
			Padding(0, 2).
			Margin(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Background(c(t.BgMantle)).
			Padding(0, 2).
			Margin(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Secondary)).
			Bold(true).
			Padding(0, 2).
			Margin(0, 1),

		DiffInsert: lipgloss.NewStyle().Background(c(t.DiffInsertBg)).Foreground(c(t.Success)),
		DiffDelete: lipgloss.NewStyle().Background(c(t.DiffDeleteBg)).Foreground(c(t.Error)),
		DiffEqual:  lipgloss.NewStyle().Background(c(t.DiffEqualBg)).Foreground(c(t.FgSubtle)),
		DiffHeader: lipgloss.NewStyle().Foreground(c(t.Info)).Bold(true),

		Toast: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Warning)).
			Padding(0, 1).
			Bold(true),
	}
}
