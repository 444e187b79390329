package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/theme"
)

// AnalyzeStep collects the sample product URL.
type AnalyzeStep struct {
	input  textinput.Model
	width  int
	height int
	err    string
}

// NewAnalyzeStep creates the analyze step, pre-filled with url.
func NewAnalyzeStep(url string) *AnalyzeStep {
	ti := textinput.New()
	ti.Placeholder = "https://shop.example/products/123"
	ti.CharLimit = 2048
	ti.SetWidth(56)
	ti.SetValue(url)
	ti.Focus()

	return &AnalyzeStep{input: ti}
}

// Init initializes the analyze step.
func (s *AnalyzeStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the analyze step.
func (s *AnalyzeStep) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			return s.Submit()
		case "tab":
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return TabExitBackwardMsg{} }
		default:
			s.err = ""
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Submit validates the URL and requests an analysis.
func (s *AnalyzeStep) Submit() tea.Cmd {
	url := strings.TrimSpace(s.input.Value())
	if url == "" {
		s.err = "URL cannot be empty"
		return nil
	}
	s.err = ""
	return func() tea.Msg {
		return AnalyzeRequestedMsg{URL: url}
	}
}

// View renders the step. analysis is the last successful analysis, if any.
func (s *AnalyzeStep) View(analysis *site.AnalysisResult, status string) string {
	st := theme.Current().S()

	instruction := st.Text.Render("Paste the URL of a product page from the new site:")

	box := st.InputBox
	if s.input.Focused() {
		box = st.InputBoxFocused
	}
	input := box.Width(min(s.width, 64)).Render(s.input.View())

	sections := []string{instruction, "", input}
	if status != "" {
		sections = append(sections, "", status)
	}
	if s.err != "" {
		sections = append(sections, "", st.Error.Render("✗ "+s.err))
	}
	if analysis != nil {
		sections = append(sections, "", renderAnalysisSummary(analysis))
	}
	sections = append(sections, "", RenderHintBar(KeyEnter, "analyze", KeyTab, "buttons", KeyEsc, "quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderAnalysisSummary(a *site.AnalysisResult) string {
	st := theme.Current().S()

	js := "no"
	if a.RequiresJavaScript {
		js = "yes"
	}
	withCandidates := 0
	for _, f := range a.SuggestedFields() {
		if len(a.Candidates(f)) > 0 {
			withCandidates++
		}
	}

	lines := []string{
		st.Success.Render("✓ Last analysis: " + a.Domain),
		st.Muted.Render(fmt.Sprintf("  %d of %d suggested fields have selectors • JavaScript required: %s",
			withCandidates, len(a.SuggestedFields()), js)),
	}
	return strings.Join(lines, "\n")
}

// URL returns the current URL value (trimmed).
func (s *AnalyzeStep) URL() string {
	return strings.TrimSpace(s.input.Value())
}

// SetError shows err below the input.
func (s *AnalyzeStep) SetError(err string) {
	s.err = err
}

// Error returns the message currently shown, if any.
func (s *AnalyzeStep) Error() string {
	return s.err
}

// SetSize updates the size of the analyze step.
func (s *AnalyzeStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.SetWidth(max(width-8, 20))
}

// Focus focuses the URL input.
func (s *AnalyzeStep) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur blurs the URL input.
func (s *AnalyzeStep) Blur() {
	s.input.Blur()
}
