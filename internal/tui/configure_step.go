package tui

import (
	"errors"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/theme"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

// Focusable elements of the configure step, in tab order.
const (
	focusName = iota
	focusDomain
	focusJavaScript
	focusProxy
	focusDelay
	focusSelectors
	focusCount
)

// ConfigureStep edits the site settings and the selector map.
type ConfigureStep struct {
	ctrl *wizard.Controller

	name   textinput.Model
	domain textinput.Model
	delay  textinput.Model

	selectors *SelectorEditor

	focus    int
	delayErr string
	width    int
	height   int
}

// NewConfigureStep creates the configure step bound to ctrl.
func NewConfigureStep(ctrl *wizard.Controller) *ConfigureStep {
	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.SetWidth(40)
		return ti
	}

	s := &ConfigureStep{
		ctrl:      ctrl,
		name:      newInput("Shop name", 100),
		domain:    newInput("shop.example", 253),
		delay:     newInput("2.0", 8),
		selectors: NewSelectorEditor(),
	}
	s.Load()
	return s
}

// Load copies the controller's configuration into the form. Call it after
// an analysis reseeds the configuration.
func (s *ConfigureStep) Load() {
	cfg := s.ctrl.Config()
	s.name.SetValue(cfg.Name)
	s.domain.SetValue(cfg.Domain)
	s.delay.SetValue(strconv.FormatFloat(cfg.RequestDelay, 'f', -1, 64))
	s.delayErr = ""
	s.selectors.SetSource(s.ctrl.Selectors(), s.ctrl.Analysis())
}

// Init initializes the configure step.
func (s *ConfigureStep) Init() tea.Cmd {
	return s.FocusFirst()
}

// Update handles messages for the configure step.
func (s *ConfigureStep) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SelectorEditedMsg); ok {
		return s.selectors.Update(msg)
	}

	keyMsg, isKey := msg.(tea.KeyPressMsg)
	if isKey && !s.selectors.Editing() {
		switch keyMsg.String() {
		case "tab":
			if s.focus == focusSelectors {
				return func() tea.Msg { return TabExitForwardMsg{} }
			}
			return s.setFocus(s.focus + 1)
		case "shift+tab":
			if s.focus == focusName {
				return func() tea.Msg { return TabExitBackwardMsg{} }
			}
			return s.setFocus(s.focus - 1)
		}

		if s.focus != focusSelectors {
			switch keyMsg.String() {
			case "down", "enter":
				return s.setFocus(s.focus + 1)
			case "up":
				if s.focus > focusName {
					return s.setFocus(s.focus - 1)
				}
				return nil
			}
		}

		switch s.focus {
		case focusJavaScript, focusProxy:
			if keyMsg.String() == "space" || keyMsg.String() == " " || keyMsg.String() == "y" || keyMsg.String() == "n" {
				s.toggle(keyMsg.String())
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
		s.ctrl.SetName(s.name.Value())
	case focusDomain:
		s.domain, cmd = s.domain.Update(msg)
		s.ctrl.SetDomain(s.domain.Value())
	case focusDelay:
		s.delay, cmd = s.delay.Update(msg)
		s.applyDelay()
	case focusSelectors:
		cmd = s.selectors.Update(msg)
	}
	return cmd
}

func (s *ConfigureStep) toggle(key string) {
	cfg := s.ctrl.Config()
	switch s.focus {
	case focusJavaScript:
		v := !cfg.UseJavaScript
		if key == "y" || key == "n" {
			v = key == "y"
		}
		s.ctrl.SetUseJavaScript(v)
	case focusProxy:
		v := !cfg.RequiresProxy
		if key == "y" || key == "n" {
			v = key == "y"
		}
		s.ctrl.SetRequiresProxy(v)
	}
}

// applyDelay parses the delay input. Unparseable input stores zero, which
// fails the test gate until corrected.
func (s *ConfigureStep) applyDelay() {
	text := strings.TrimSpace(s.delay.Value())
	d, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.delayErr = "must be a number of seconds"
		s.ctrl.SetRequestDelay(0)
		return
	}
	s.delayErr = ""
	s.ctrl.SetRequestDelay(d)
}

func (s *ConfigureStep) setFocus(i int) tea.Cmd {
	if i < 0 || i >= focusCount {
		return nil
	}
	s.blurAll()
	s.focus = i

	switch i {
	case focusName:
		return s.name.Focus()
	case focusDomain:
		return s.domain.Focus()
	case focusDelay:
		return s.delay.Focus()
	case focusSelectors:
		s.selectors.Focus()
	}
	return nil
}

func (s *ConfigureStep) blurAll() {
	s.name.Blur()
	s.domain.Blur()
	s.delay.Blur()
	s.selectors.Blur()
}

// FocusFirst focuses the first form field.
func (s *ConfigureStep) FocusFirst() tea.Cmd {
	return s.setFocus(focusName)
}

// FocusLast focuses the selector table.
func (s *ConfigureStep) FocusLast() tea.Cmd {
	return s.setFocus(focusSelectors)
}

// Blur removes focus from every element.
func (s *ConfigureStep) Blur() {
	s.blurAll()
	s.focus = -1
}

// Editing reports whether a key like esc belongs to an inline edit.
func (s *ConfigureStep) Editing() bool {
	return s.selectors.Editing()
}

// Selectors returns the selector table component.
func (s *ConfigureStep) Selectors() *SelectorEditor {
	return s.selectors
}

// View renders the configure step.
func (s *ConfigureStep) View() string {
	st := theme.Current().S()
	cfg := s.ctrl.Config()

	label := func(i int, text string) string {
		if s.focus == i {
			return st.LabelFocused.Render(text)
		}
		return st.Label.Render(text)
	}
	toggle := func(v bool) string {
		if v {
			return st.Success.Render("[x] yes")
		}
		return st.Muted.Render("[ ] no")
	}

	delayLine := label(focusDelay, "Request delay") + s.delay.View() + st.Muted.Render(" s (0.5–10)")
	if s.delayErr != "" {
		delayLine += " " + st.Error.Render("✗ "+s.delayErr)
	}

	sections := []string{
		label(focusName, "Site name") + s.name.View(),
		label(focusDomain, "Domain") + s.domain.View(),
		label(focusJavaScript, "JavaScript") + toggle(cfg.UseJavaScript),
		label(focusProxy, "Proxy") + toggle(cfg.RequiresProxy),
		delayLine,
		"",
		s.selectors.View(),
	}

	if err := s.ctrl.GateError(); err != nil {
		sections = append(sections, "", renderGateErrors(err))
	}

	var hints string
	switch s.focus {
	case focusSelectors:
		hints = s.selectors.Hints()
	case focusJavaScript, focusProxy:
		hints = RenderHintBar(KeySpace, "toggle", KeyTab, "next", KeyCtrlO, "export", KeyEsc, "back")
	default:
		hints = RenderHintBar(KeyTab, "next", KeyUpDown, "move", KeyCtrlO, "export", KeyEsc, "back")
	}
	sections = append(sections, "", hints)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderGateErrors(err error) string {
	st := theme.Current().S()

	var lines []string
	for _, e := range []error{wizard.ErrMissingName, wizard.ErrMissingDomain, wizard.ErrDelayRange} {
		if errors.Is(err, e) {
			lines = append(lines, st.Warning.Render("• "+e.Error()))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, st.Warning.Render("• "+site.UserMessage(err)))
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the size of the configure step.
func (s *ConfigureStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	inputWidth := max(width-20, 20)
	s.name.SetWidth(inputWidth)
	s.domain.SetWidth(inputWidth)
	s.selectors.SetSize(width, height)
}
