// Package tui is the full-screen terminal front end of the site wizard.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/sitewizard/internal/export"
	"github.com/mark3labs/sitewizard/internal/logger"
	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/theme"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

// Modal layout constants
const (
	minModalWidth = 60
	maxModalWidth = 110
)

// Options configure the wizard UI.
type Options struct {
	URL       string // Pre-fills the analyze step
	ExportDir string // Directory for ctrl+o exports
}

// Model is the BubbleTea model for the site wizard. All wizard state lives
// in the controller; the model owns focus, layout and in-flight feedback.
type Model struct {
	ctx  context.Context
	ctrl *wizard.Controller
	opts Options

	analyzeStep   *AnalyzeStep
	configureStep *ConfigureStep
	testStep      *TestStep

	buttons       *ButtonBar
	buttonFocused bool

	spinner Spinner
	toast   *Toast

	width  int
	height int
}

// New creates the wizard model.
func New(ctx context.Context, ctrl *wizard.Controller, opts Options) *Model {
	return &Model{
		ctx:           ctx,
		ctrl:          ctrl,
		opts:          opts,
		analyzeStep:   NewAnalyzeStep(opts.URL),
		configureStep: NewConfigureStep(ctrl),
		testStep:      NewTestStep(ctrl),
		buttons:       NewButtonBar(nil),
		spinner:       NewDefaultSpinner(),
		toast:         NewToast(),
	}
}

// Run starts the wizard in the terminal and blocks until the operator quits.
func Run(ctx context.Context, ctrl *wizard.Controller, opts Options) error {
	m := New(ctx, ctrl, opts)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	m.refreshButtons()
	return m.analyzeStep.Init()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateStepSizes()
		return m, nil

	case TabExitForwardMsg:
		m.focusButtons(true)
		return m, nil

	case TabExitBackwardMsg:
		m.focusButtons(false)
		return m, nil

	case AnalyzeRequestedMsg:
		return m, m.startAnalyze(msg.URL)

	case TestRequestedMsg:
		return m, m.startTest()

	case CreateRequestedMsg:
		return m, m.startCreate()

	case ExportRequestedMsg:
		return m, m.exportConfig()

	case wizard.AnalyzeDoneMsg:
		return m, m.applyAnalyze(msg)

	case wizard.TestDoneMsg:
		if err := m.ctrl.Apply(msg); err != nil {
			m.testStep.SetError(site.UserMessage(err))
		}
		m.refreshButtons()
		return m, nil

	case wizard.CreateDoneMsg:
		if err := m.ctrl.Apply(msg); err != nil {
			m.testStep.SetError(site.UserMessage(err))
			m.refreshButtons()
			return m, nil
		}
		m.refreshButtons()
		return m, m.toast.Show(m.ctrl.Notice())

	case spinner.TickMsg:
		if !m.ctrl.Busy() {
			return m, nil
		}
		return m, m.spinner.Update(msg)

	case ToastDismissMsg:
		return m, m.toast.Update(msg)

	case tea.PasteMsg:
		return m, m.updateCurrentStep(cleanPaste(msg))
	}

	return m, m.updateCurrentStep(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "ctrl+o":
		if m.ctrl.Step() != wizard.StepAnalyze {
			return m, func() tea.Msg { return ExportRequestedMsg{} }, true
		}
	}

	if m.buttonFocused {
		switch msg.String() {
		case "tab", "right":
			if !m.buttons.FocusNext() {
				return m, m.focusContent(true), true
			}
			return m, nil, true
		case "shift+tab", "left":
			if !m.buttons.FocusPrev() {
				return m, m.focusContent(false), true
			}
			return m, nil, true
		case "enter", "space", " ":
			id, ok := m.buttons.FocusedButton()
			if !ok {
				return m, nil, true
			}
			return m, m.activate(id), true
		case "esc":
			return m, m.goBack(), true
		}
		return m, nil, true
	}

	if msg.String() == "esc" {
		if m.ctrl.Step() == wizard.StepConfigure && m.configureStep.Editing() {
			return m, nil, false
		}
		return m, m.goBack(), true
	}
	return m, nil, false
}

func (m *Model) activate(id ButtonID) tea.Cmd {
	switch id {
	case ButtonCancel:
		return tea.Quit
	case ButtonBack:
		return m.goBack()
	case ButtonAnalyze:
		return m.analyzeStep.Submit()
	case ButtonNext:
		return m.goNext()
	case ButtonRunTest:
		return m.testStep.Submit()
	case ButtonCreate:
		return m.startCreate()
	}
	return nil
}

func (m *Model) goBack() tea.Cmd {
	if m.ctrl.Step() == wizard.StepAnalyze {
		return tea.Quit
	}
	m.ctrl.Retreat()
	return m.enterStep()
}

func (m *Model) goNext() tea.Cmd {
	if !m.ctrl.Advance() {
		m.refreshButtons()
		return nil
	}
	return m.enterStep()
}

// enterStep focuses the content of the step the controller is on.
func (m *Model) enterStep() tea.Cmd {
	m.buttonFocused = false
	m.buttons.Blur()
	m.analyzeStep.Blur()
	m.configureStep.Blur()
	m.testStep.Blur()
	m.refreshButtons()
	m.updateStepSizes()

	switch m.ctrl.Step() {
	case wizard.StepAnalyze:
		return m.analyzeStep.Focus()
	case wizard.StepConfigure:
		return m.configureStep.FocusFirst()
	case wizard.StepTest:
		return m.testStep.Init()
	}
	return nil
}

func (m *Model) focusButtons(first bool) {
	m.refreshButtons()
	var ok bool
	if first {
		ok = m.buttons.FocusFirst()
	} else {
		ok = m.buttons.FocusLast()
	}
	if !ok {
		return
	}
	m.buttonFocused = true
	m.analyzeStep.Blur()
	m.configureStep.Blur()
	m.testStep.Blur()
}

func (m *Model) focusContent(first bool) tea.Cmd {
	m.buttonFocused = false
	m.buttons.Blur()

	switch m.ctrl.Step() {
	case wizard.StepAnalyze:
		return m.analyzeStep.Focus()
	case wizard.StepConfigure:
		if first {
			return m.configureStep.FocusFirst()
		}
		return m.configureStep.FocusLast()
	case wizard.StepTest:
		return m.testStep.Focus()
	}
	return nil
}

func (m *Model) startAnalyze(url string) tea.Cmd {
	op, err := m.ctrl.StartAnalyze(m.ctx, url)
	if err != nil {
		m.analyzeStep.SetError(site.UserMessage(err))
		return nil
	}
	m.refreshButtons()
	return m.run(op)
}

func (m *Model) applyAnalyze(msg wizard.AnalyzeDoneMsg) tea.Cmd {
	if err := m.ctrl.Apply(msg); err != nil {
		m.analyzeStep.SetError(site.UserMessage(err))
		m.refreshButtons()
		return nil
	}
	m.analyzeStep.SetError("")
	m.configureStep.Load()
	return m.enterStep()
}

func (m *Model) startTest() tea.Cmd {
	op, err := m.ctrl.StartTest(m.ctx)
	if err != nil {
		m.testStep.SetError(site.UserMessage(err))
		return nil
	}
	m.testStep.SetError("")
	m.refreshButtons()
	return m.run(op)
}

func (m *Model) startCreate() tea.Cmd {
	op, err := m.ctrl.StartCreate(m.ctx)
	if err != nil {
		m.testStep.SetError(site.UserMessage(err))
		return nil
	}
	m.testStep.SetError("")
	m.refreshButtons()
	return m.run(op)
}

// run performs op off the UI loop; its completion comes back through Update.
func (m *Model) run(op wizard.Op) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return op() },
		m.spinner.Tick(),
	)
}

func (m *Model) exportConfig() tea.Cmd {
	dir := m.opts.ExportDir
	if dir == "" {
		dir = "."
	}
	path, err := export.Save(dir, m.ctrl.Config())
	if err != nil {
		logger.Error("Export failed: %v", err)
		return m.toast.Show("Export failed: " + err.Error())
	}
	return m.toast.Show("Saved " + path)
}

func (m *Model) updateCurrentStep(msg tea.Msg) tea.Cmd {
	if m.buttonFocused {
		if _, ok := msg.(tea.KeyPressMsg); ok {
			return nil
		}
	}

	var cmd tea.Cmd
	switch m.ctrl.Step() {
	case wizard.StepAnalyze:
		cmd = m.analyzeStep.Update(msg)
	case wizard.StepConfigure:
		cmd = m.configureStep.Update(msg)
	case wizard.StepTest:
		cmd = m.testStep.Update(msg)
	}
	m.refreshButtons()
	return cmd
}

// refreshButtons rebuilds the button bar for the current step and state.
func (m *Model) refreshButtons() {
	var buttons []Button
	switch m.ctrl.Step() {
	case wizard.StepAnalyze:
		buttons = []Button{
			{ID: ButtonCancel, Label: "Cancel"},
			{ID: ButtonAnalyze, Label: "Analyze", Disabled: m.ctrl.AnalyzeCall().Busy()},
			{ID: ButtonNext, Label: "Next →", Disabled: !m.ctrl.CanAdvance()},
		}
	case wizard.StepConfigure:
		buttons = []Button{
			{ID: ButtonBack, Label: "← Back"},
			{ID: ButtonNext, Label: "Next →", Disabled: !m.ctrl.CanAdvance()},
		}
	case wizard.StepTest:
		buttons = []Button{
			{ID: ButtonBack, Label: "← Back"},
			{ID: ButtonRunTest, Label: "Run Test", Disabled: m.ctrl.TestCall().Busy()},
			{ID: ButtonCreate, Label: "Create Site", Disabled: m.ctrl.CreateCall().Busy()},
		}
	}
	m.buttons.SetButtons(buttons)
	if m.buttonFocused && !m.buttons.Focused() {
		m.buttonFocused = false
	}
}

func (m *Model) contentSize() (int, int) {
	width := min(max(m.width-10, minModalWidth), maxModalWidth) - 6
	height := max(m.height-10, 10)
	return width, height
}

func (m *Model) updateStepSizes() {
	w, h := m.contentSize()
	m.analyzeStep.SetSize(w, h)
	m.configureStep.SetSize(w, h)
	m.testStep.SetSize(w, h)
	m.buttons.SetWidth(w)
}

// status describes the outstanding request, if any.
func (m *Model) status() string {
	var text string
	switch {
	case m.ctrl.AnalyzeCall().Busy():
		text = "Analyzing page..."
	case m.ctrl.TestCall().Busy():
		text = "Testing configuration..."
	case m.ctrl.CreateCall().Busy():
		text = "Creating site..."
	default:
		return ""
	}
	return m.spinner.View() + " " + theme.Current().S().Muted.Render(text)
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	var content string
	switch m.ctrl.Step() {
	case wizard.StepAnalyze:
		content = m.analyzeStep.View(m.ctrl.Analysis(), m.status())
	case wizard.StepConfigure:
		content = m.configureStep.View()
	case wizard.StepTest:
		content = m.testStep.View(m.status())
	}

	screen := m.renderModal(content)
	if toast := m.toast.View(m.width); toast != "" {
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, toast)
	}

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(screen).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal wraps the step content in the modal container with the title,
// step indicator and buttons.
func (m *Model) renderModal(content string) string {
	th := theme.Current()
	st := th.S()

	sections := []string{
		theme.ApplyGradient("Site Wizard", th.Primary, th.Secondary),
		m.renderSteps(),
		"",
		content,
		"",
		m.buttons.Render(),
	}

	w, _ := m.contentSize()
	modal := st.ModalContainer.Width(w + 6).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(m.width, max(m.height-1, 0), lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) renderSteps() string {
	st := theme.Current().S()
	steps := []wizard.Step{wizard.StepAnalyze, wizard.StepConfigure, wizard.StepTest}

	parts := make([]string, 0, len(steps))
	for _, step := range steps {
		label := fmt.Sprintf("%d %s", step, step)
		switch {
		case step == m.ctrl.Step():
			parts = append(parts, st.StepActive.Render(label))
		case step < m.ctrl.Step():
			parts = append(parts, st.StepDone.Render("✓ "+label))
		default:
			parts = append(parts, st.StepPending.Render(label))
		}
	}
	return strings.Join(parts, st.Muted.Render("›"))
}
