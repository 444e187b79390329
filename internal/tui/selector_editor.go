package tui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/mark3labs/sitewizard/internal/export"
	"github.com/mark3labs/sitewizard/internal/logger"
	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/theme"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

type editMode int

const (
	modeBrowse editMode = iota
	modeEditSelector
	modeRename
)

// SelectorEditor is the table of field → selector rows in the configure
// step. It edits the live selector map of the wizard.
type SelectorEditor struct {
	selectors *site.SelectorMap
	analysis  *site.AnalysisResult
	suggested *site.SelectorMap // selectors as first seeded, for the diff view

	cursor   int
	mode     editMode
	editing  string // field being edited
	input    textinput.Model
	err      string
	focused  bool
	showDiff bool

	width  int
	height int
}

// NewSelectorEditor creates an empty selector editor.
func NewSelectorEditor() *SelectorEditor {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.SetWidth(40)

	return &SelectorEditor{
		selectors: site.NewSelectorMap(),
		suggested: site.NewSelectorMap(),
		input:     ti,
	}
}

// SetSource points the editor at the live map and the analysis it was
// seeded from. Any edit in progress is dropped.
func (e *SelectorEditor) SetSource(selectors *site.SelectorMap, analysis *site.AnalysisResult) {
	e.selectors = selectors
	e.analysis = analysis
	e.suggested = wizard.Seed(analysis).Selectors
	e.mode = modeBrowse
	e.err = ""
	e.clampCursor()
}

// Editing reports whether an inline edit is in progress. The enclosing step
// must pass every key through while editing.
func (e *SelectorEditor) Editing() bool {
	return e.mode != modeBrowse
}

// CurrentField returns the field under the cursor.
func (e *SelectorEditor) CurrentField() (string, bool) {
	keys := e.selectors.Keys()
	if e.cursor < 0 || e.cursor >= len(keys) {
		return "", false
	}
	return keys[e.cursor], true
}

// Cursor returns the row index under the cursor.
func (e *SelectorEditor) Cursor() int {
	return e.cursor
}

// Err returns the inline error, if any.
func (e *SelectorEditor) Err() string {
	return e.err
}

// ShowingDiff reports whether the diff view is on.
func (e *SelectorEditor) ShowingDiff() bool {
	return e.showDiff
}

// Update handles messages for the selector editor.
func (e *SelectorEditor) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SelectorEditedMsg:
		e.applyEdited(msg)
		return nil
	case tea.KeyPressMsg:
		if e.mode != modeBrowse {
			return e.updateEditing(msg)
		}
		return e.updateBrowsing(msg)
	}

	if e.mode != modeBrowse {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return cmd
	}
	return nil
}

func (e *SelectorEditor) updateBrowsing(msg tea.KeyPressMsg) tea.Cmd {
	e.err = ""
	switch msg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < e.selectors.Len()-1 {
			e.cursor++
		}
	case "enter", "e":
		return e.beginEdit(modeEditSelector)
	case "r":
		return e.beginEdit(modeRename)
	case "a":
		name := e.selectors.Add()
		e.cursor = e.selectors.IndexOf(name)
		logger.Debug("Added selector field %s", name)
	case "x", "delete":
		field, ok := e.CurrentField()
		if !ok {
			return nil
		}
		if err := e.selectors.Remove(field); err != nil {
			e.err = site.UserMessage(err)
			return nil
		}
		e.clampCursor()
	case "ctrl+n":
		e.cycleCandidate()
	case "ctrl+e":
		return e.openEditor()
	case "d":
		e.showDiff = !e.showDiff
	}
	return nil
}

func (e *SelectorEditor) updateEditing(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		e.commitEdit()
		return nil
	case "esc":
		e.cancelEdit()
		return nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

func (e *SelectorEditor) beginEdit(mode editMode) tea.Cmd {
	field, ok := e.CurrentField()
	if !ok {
		return nil
	}

	e.mode = mode
	e.editing = field
	e.err = ""
	switch mode {
	case modeRename:
		e.input.Placeholder = "field name"
		e.input.SetValue(field)
	default:
		value, _ := e.selectors.Get(field)
		e.input.Placeholder = "CSS selector, e.g. span.price"
		e.input.SetValue(value)
	}
	e.input.CursorEnd()
	return e.input.Focus()
}

func (e *SelectorEditor) commitEdit() {
	var err error
	switch e.mode {
	case modeRename:
		err = e.selectors.Rename(e.editing, e.input.Value())
	case modeEditSelector:
		err = e.selectors.SetValue(e.editing, strings.TrimSpace(e.input.Value()))
	}
	if err != nil {
		// Stay in edit mode so the operator can correct the value.
		e.err = site.UserMessage(err)
		return
	}
	e.cancelEdit()
}

func (e *SelectorEditor) cancelEdit() {
	e.mode = modeBrowse
	e.editing = ""
	e.input.Blur()
	e.input.SetValue("")
}

func (e *SelectorEditor) cycleCandidate() {
	field, ok := e.CurrentField()
	if !ok {
		return
	}
	current, _ := e.selectors.Get(field)
	next, ok := wizard.NextCandidate(e.analysis, field, current)
	if !ok {
		e.err = fmt.Sprintf("no suggestions for %s", field)
		return
	}
	_ = e.selectors.SetValue(field, next)
}

// openEditor launches $EDITOR on the selector under the cursor.
func (e *SelectorEditor) openEditor() tea.Cmd {
	field, ok := e.CurrentField()
	if !ok {
		return nil
	}
	value, _ := e.selectors.Get(field)

	tmpfile, err := os.CreateTemp("", "sitewizard_selector_*.css")
	if err != nil {
		e.err = "could not create temp file for editor"
		return nil
	}
	if _, err := tmpfile.WriteString(value + "\n"); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		e.err = "could not write temp file for editor"
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("sitewizard", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		e.err = "no editor available: set $EDITOR"
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return SelectorEditedMsg{Field: field, Err: err}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return SelectorEditedMsg{Field: field, Err: err}
		}
		return SelectorEditedMsg{Field: field, Value: strings.TrimSpace(string(content))}
	})
}

func (e *SelectorEditor) applyEdited(msg SelectorEditedMsg) {
	if msg.Err != nil {
		logger.Warn("Editor for %s failed: %v", msg.Field, msg.Err)
		e.err = "editor failed: " + msg.Err.Error()
		return
	}
	// The field may have been removed while the editor was open.
	if err := e.selectors.SetValue(msg.Field, msg.Value); err != nil {
		e.err = site.UserMessage(err)
	}
}

func (e *SelectorEditor) clampCursor() {
	if e.cursor >= e.selectors.Len() {
		e.cursor = e.selectors.Len() - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

// View renders the selector table.
func (e *SelectorEditor) View() string {
	st := theme.Current().S()

	title := st.LabelFocused.Width(0).Render("Selectors")
	if !e.focused {
		title = st.Label.Width(0).Render("Selectors")
	}
	lines := []string{title}

	entries := e.selectors.Entries()
	if len(entries) == 0 {
		lines = append(lines, st.Muted.Render("  no fields • press a to add one"))
	}

	findings := e.selectors.Lint()
	nameWidth := 14
	for _, entry := range entries {
		nameWidth = max(nameWidth, lipgloss.Width(entry.Field)+1)
	}

	for i, entry := range entries {
		lines = append(lines, e.renderRow(i, entry, findings, nameWidth))
	}

	if e.err != "" {
		lines = append(lines, st.Error.Render("✗ "+e.err))
	}

	if e.showDiff {
		lines = append(lines, "", e.renderDiff())
	}

	return strings.Join(lines, "\n")
}

func (e *SelectorEditor) renderRow(i int, entry site.Entry, findings []site.Finding, nameWidth int) string {
	st := theme.Current().S()
	selected := e.focused && i == e.cursor

	marker := "  "
	if selected {
		marker = "▸ "
	}

	name := st.FieldName.Width(nameWidth).Render(entry.Field)
	value := st.Selector.Render(entry.Selector)
	if entry.Selector == "" {
		value = st.Muted.Render("(empty)")
	}

	if e.mode != modeBrowse && entry.Field == e.editing {
		if e.mode == modeRename {
			name = e.input.View()
		} else {
			value = e.input.View()
		}
	}

	var notes []string
	if f, ok := site.FindingFor(findings, entry.Field); ok && entry.Selector != "" {
		notes = append(notes, st.Error.Render("✗ "+f.Message))
	}
	if n := len(e.analysis.Candidates(entry.Field)); n > 1 {
		notes = append(notes, st.Muted.Render(fmt.Sprintf("%d suggestions", n)))
	}

	row := marker + name + " " + value
	if len(notes) > 0 {
		row += "  " + strings.Join(notes, " ")
	}
	if selected && e.mode == modeBrowse {
		return st.RowCursor.Render(row)
	}
	return row
}

func (e *SelectorEditor) renderDiff() string {
	st := theme.Current().S()

	diff := export.Diff(e.suggested, e.selectors)
	if diff == "" {
		return st.Muted.Render("No changes from the suggested selectors.")
	}

	var out []string
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			out = append(out, st.DiffHeader.Render(line))
		case strings.HasPrefix(line, "+"):
			out = append(out, st.DiffInsert.Render(line))
		case strings.HasPrefix(line, "-"):
			out = append(out, st.DiffDelete.Render(line))
		default:
			out = append(out, st.DiffEqual.Render(line))
		}
	}
	return strings.Join(out, "\n")
}

// Hints returns the key hints for the current mode.
func (e *SelectorEditor) Hints() string {
	if e.mode != modeBrowse {
		return RenderHintBar(KeyEnter, "save", KeyEsc, "cancel")
	}
	return RenderHintBar(
		KeyUpDown, "move",
		"e", "edit",
		"r", "rename",
		"a", "add",
		"x", "remove",
		KeyCtrlN, "next suggestion",
		KeyCtrlE, "$EDITOR",
		"d", "diff",
	)
}

// SetSize updates the size of the editor.
func (e *SelectorEditor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.input.SetWidth(max(width-24, 20))
}

// Focus gives the table keyboard focus.
func (e *SelectorEditor) Focus() {
	e.focused = true
}

// Blur removes keyboard focus and drops any edit in progress.
func (e *SelectorEditor) Blur() {
	e.focused = false
	if e.mode != modeBrowse {
		e.cancelEdit()
	}
}
