package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/testfixtures"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

// newTestEditor returns a focused editor over the seeded shop selectors.
func newTestEditor(t *testing.T) (*SelectorEditor, *site.SelectorMap) {
	t.Helper()
	analysis := testfixtures.ShopAnalysis()
	selectors := wizard.Seed(analysis).Selectors

	e := NewSelectorEditor()
	e.SetSource(selectors, analysis)
	e.SetSize(80, 20)
	e.Focus()
	return e, selectors
}

func press(e *SelectorEditor, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		e.Update(k)
	}
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// clearInput deletes the value of the inline input.
func clearInput(e *SelectorEditor) {
	for range len([]rune(e.input.Value())) {
		e.Update(testfixtures.Key(tea.KeyBackspace))
	}
}

// --- Navigation Tests ---

func TestSelectorEditor_CursorMovement(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)
	require.Equal(t, 0, e.Cursor())

	press(e, char('j'), testfixtures.Key(tea.KeyDown))
	require.Equal(t, 2, e.Cursor())

	press(e, char('k'))
	require.Equal(t, 1, e.Cursor())

	for range selectors.Len() + 3 {
		press(e, testfixtures.Key(tea.KeyDown))
	}
	require.Equal(t, selectors.Len()-1, e.Cursor(), "cursor stops at the last row")

	for range selectors.Len() + 3 {
		press(e, testfixtures.Key(tea.KeyUp))
	}
	require.Equal(t, 0, e.Cursor(), "cursor stops at the first row")
}

// --- Edit Tests ---

func TestSelectorEditor_EditSelector(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	press(e, testfixtures.Key(tea.KeyEnter))
	require.True(t, e.Editing())
	require.Equal(t, "div.price", e.input.Value())

	clearInput(e)
	for _, k := range testfixtures.Runes("span.amount") {
		e.Update(k)
	}
	press(e, testfixtures.Key(tea.KeyEnter))

	require.False(t, e.Editing())
	value, _ := selectors.Get("price")
	require.Equal(t, "span.amount", value)
}

func TestSelectorEditor_EscCancelsEdit(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	press(e, char('e'))
	clearInput(e)
	press(e, char('x'), testfixtures.Key(tea.KeyEscape))

	require.False(t, e.Editing())
	value, _ := selectors.Get("price")
	require.Equal(t, "div.price", value, "cancelled edits leave the map unchanged")
}

func TestSelectorEditor_EmptySelectorAllowed(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	press(e, char('e'))
	clearInput(e)
	press(e, testfixtures.Key(tea.KeyEnter))

	require.False(t, e.Editing())
	value, ok := selectors.Get("price")
	require.True(t, ok)
	require.Empty(t, value)
	require.True(t, testfixtures.Contains(e.View(), "(empty)"))
}

// --- Rename Tests ---

func TestSelectorEditor_RenameKeepsPosition(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)
	press(e, char('j')) // currency

	press(e, char('r'))
	require.Equal(t, "currency", e.input.Value())
	clearInput(e)
	for _, k := range testfixtures.Runes("currency_code") {
		e.Update(k)
	}
	press(e, testfixtures.Key(tea.KeyEnter))

	require.False(t, e.Editing())
	require.Equal(t, 1, selectors.IndexOf("currency_code"))
	require.False(t, selectors.Has("currency"))
	value, _ := selectors.Get("currency_code")
	require.Equal(t, "span.currency", value)
}

func TestSelectorEditor_RenameToExistingRejected(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)
	before := selectors.Clone()

	press(e, char('r'))
	clearInput(e)
	for _, k := range testfixtures.Runes("currency") {
		e.Update(k)
	}
	press(e, testfixtures.Key(tea.KeyEnter))

	require.True(t, e.Editing(), "a rejected rename stays in edit mode")
	require.Contains(t, e.Err(), "already exists")
	require.True(t, before.Equal(selectors), "the map is unchanged")
}

func TestSelectorEditor_RenameToEmptyRejected(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	press(e, char('r'))
	clearInput(e)
	press(e, testfixtures.Key(tea.KeyEnter))

	require.True(t, e.Editing())
	require.Equal(t, "field name cannot be empty", e.Err())
	require.True(t, selectors.Has("price"))
}

// --- Add / Remove Tests ---

func TestSelectorEditor_AddAndRemove(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)
	n := selectors.Len()

	press(e, char('a'))
	require.Equal(t, n+1, selectors.Len())
	field, ok := e.CurrentField()
	require.True(t, ok)
	require.Equal(t, "field_1", field)
	require.Equal(t, n, e.Cursor(), "cursor moves to the new row")

	press(e, char('x'))
	require.Equal(t, n, selectors.Len())
	require.False(t, selectors.Has("field_1"))
	require.Equal(t, n-1, e.Cursor())
}

func TestSelectorEditor_RemoveLastField(t *testing.T) {
	t.Parallel()

	e := NewSelectorEditor()
	selectors := site.NewSelectorMap()
	require.NoError(t, selectors.Put("price", "div.price"))
	e.SetSource(selectors, nil)
	e.Focus()

	press(e, char('x'))
	require.Zero(t, selectors.Len())
	require.True(t, testfixtures.Contains(e.View(), "no fields"))

	press(e, char('x'), char('e'), char('r'))
	require.False(t, e.Editing(), "edits need a row")
}

// --- Suggestion Tests ---

func TestSelectorEditor_CycleCandidates(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	press(e, testfixtures.Ctrl('n'))
	value, _ := selectors.Get("price")
	require.Equal(t, ".amount", value)

	press(e, testfixtures.Ctrl('n'))
	value, _ = selectors.Get("price")
	require.Equal(t, "[itemprop=price]", value)

	press(e, testfixtures.Ctrl('n'))
	value, _ = selectors.Get("price")
	require.Equal(t, "div.price", value, "cycling wraps to the first candidate")
}

func TestSelectorEditor_CycleWithoutCandidates(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)
	press(e, char('j'), char('j')) // stock_status has no candidates

	press(e, testfixtures.Ctrl('n'))

	value, _ := selectors.Get("stock_status")
	require.Empty(t, value)
	require.Equal(t, "no suggestions for stock_status", e.Err())
}

// --- External Editor Tests ---

func TestSelectorEditor_EditedMsgUpdatesField(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	e.Update(SelectorEditedMsg{Field: "currency", Value: "meta[itemprop=priceCurrency]"})
	value, _ := selectors.Get("currency")
	require.Equal(t, "meta[itemprop=priceCurrency]", value)

	e.Update(SelectorEditedMsg{Field: "gone", Value: "x"})
	require.Contains(t, e.Err(), "no such field")
}

// --- Rendering Tests ---

func TestSelectorEditor_DiffView(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)

	press(e, char('d'))
	require.True(t, e.ShowingDiff())
	require.True(t, testfixtures.Contains(e.View(), "No changes from the suggested selectors."))

	require.NoError(t, selectors.SetValue("price", "span.amount"))
	view := e.View()
	require.True(t, testfixtures.Contains(view, "-price: div.price"))
	require.True(t, testfixtures.Contains(view, "+price: span.amount"))

	press(e, char('d'))
	require.False(t, e.ShowingDiff())
}

func TestSelectorEditor_LintMarker(t *testing.T) {
	t.Parallel()

	e, selectors := newTestEditor(t)
	require.NoError(t, selectors.SetValue("currency", "div[["))

	require.True(t, testfixtures.Contains(e.View(), "✗"))
}
