package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/sitewizard/internal/export"
	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/theme"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

// TestStep runs the configuration against a test page and creates the site.
type TestStep struct {
	ctrl *wizard.Controller

	input    textinput.Model
	viewport viewport.Model
	preview  bool // show the YAML preview instead of the test report
	err      string

	// Result rendered into the viewport, to avoid re-rendering markdown on
	// every frame.
	rendered       string
	renderedWidth  int
	renderedResult *site.TestResult
	stale          bool

	width  int
	height int
}

// NewTestStep creates the test step bound to ctrl.
func NewTestStep(ctrl *wizard.Controller) *TestStep {
	ti := textinput.New()
	ti.Placeholder = "https://shop.example/products/456"
	ti.CharLimit = 2048
	ti.SetWidth(56)

	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)

	return &TestStep{
		ctrl:     ctrl,
		input:    ti,
		viewport: vp,
	}
}

// Init focuses the test URL input with the controller's current value.
func (s *TestStep) Init() tea.Cmd {
	s.input.SetValue(s.ctrl.TestURL())
	s.stale = true
	s.refresh()
	return s.input.Focus()
}

// Update handles messages for the test step.
func (s *TestStep) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			return s.Submit()
		case "ctrl+s":
			return func() tea.Msg { return CreateRequestedMsg{} }
		case "ctrl+p":
			s.preview = !s.preview
			s.stale = true
			s.refresh()
			return nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return cmd
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
	s.ctrl.SetTestURL(s.input.Value())
	return cmd
}

// Submit requests a test run.
func (s *TestStep) Submit() tea.Cmd {
	s.ctrl.SetTestURL(s.input.Value())
	if strings.TrimSpace(s.input.Value()) == "" {
		s.err = "test URL cannot be empty"
		return nil
	}
	s.err = ""
	return func() tea.Msg { return TestRequestedMsg{} }
}

// SetError shows err below the input.
func (s *TestStep) SetError(err string) {
	s.err = err
}

// Error returns the message currently shown, if any.
func (s *TestStep) Error() string {
	return s.err
}

// Previewing reports whether the YAML preview is shown.
func (s *TestStep) Previewing() bool {
	return s.preview
}

// refresh re-renders the viewport content when the result, the mode or the
// width changed.
func (s *TestStep) refresh() {
	result := s.ctrl.TestResult()
	if !s.stale && result == s.renderedResult && s.renderedWidth == s.width {
		return
	}

	if s.preview {
		data, err := export.Marshal(s.ctrl.Config())
		if err != nil {
			s.rendered = theme.Current().S().Error.Render(err.Error())
		} else {
			s.rendered = highlightYAML(string(data))
		}
	} else {
		s.rendered = RenderReport(export.Report(result), max(s.width-2, 20))
	}
	s.stale = false
	s.renderedResult = result
	s.renderedWidth = s.width
	s.viewport.SetContent(s.rendered)
	s.viewport.GotoTop()
}

// View renders the test step. status describes an outstanding request.
func (s *TestStep) View(status string) string {
	st := theme.Current().S()
	s.refresh()

	box := st.InputBox
	if s.input.Focused() {
		box = st.InputBoxFocused
	}

	sections := []string{
		st.Text.Render("Test page URL:"),
		box.Width(min(s.width, 64)).Render(s.input.View()),
	}
	if status != "" {
		sections = append(sections, status)
	}
	if s.err != "" {
		sections = append(sections, st.Error.Render("✗ "+s.err))
	}
	if notice := s.ctrl.Notice(); notice != "" {
		sections = append(sections, st.Success.Render("✓ "+notice))
	}

	title := "Test report"
	if s.preview {
		title = "Configuration preview"
	}
	sections = append(sections, "", st.Label.Width(0).Render(title), s.viewport.View())

	sections = append(sections, "", RenderHintBar(
		KeyEnter, "run test",
		KeyCtrlS, "create site",
		KeyCtrlP, "preview",
		KeyPgUpDown, "scroll",
		KeyCtrlO, "export",
		KeyEsc, "back",
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetSize updates the size of the test step.
func (s *TestStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.SetWidth(max(width-8, 20))
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(max(height-12, 5))
}

// Focus focuses the URL input.
func (s *TestStep) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur blurs the URL input.
func (s *TestStep) Blur() {
	s.input.Blur()
}
