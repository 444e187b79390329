package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/sitewizard/internal/tui/testfixtures"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

// newTestStep returns a test step over a controller at the test step.
func newTestStep(t *testing.T, svc *testfixtures.MockService) (*TestStep, *wizard.Controller) {
	t.Helper()
	ctrl := wizard.New(svc)
	op, err := ctrl.StartAnalyze(context.Background(), testfixtures.ShopURL)
	require.NoError(t, err)
	require.NoError(t, ctrl.Run(op))
	require.True(t, ctrl.Advance())

	s := NewTestStep(ctrl)
	s.SetSize(80, 30)
	s.Init()
	return s, ctrl
}

func TestTestStep_EmptyURL(t *testing.T) {
	t.Parallel()

	s, _ := newTestStep(t, testfixtures.NewMockService())
	s.input.SetValue("   ")

	cmd := s.Update(testfixtures.Key(tea.KeyEnter))

	require.Nil(t, cmd)
	require.Equal(t, "test URL cannot be empty", s.Error())
}

func TestTestStep_SubmitRequestsTest(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestStep(t, testfixtures.NewMockService())
	s.input.SetValue(testfixtures.ShopTestURL)

	cmd := s.Update(testfixtures.Key(tea.KeyEnter))

	require.NotNil(t, cmd)
	require.IsType(t, TestRequestedMsg{}, cmd())
	require.Equal(t, testfixtures.ShopTestURL, ctrl.TestURL())
}

func TestTestStep_CreateShortcut(t *testing.T) {
	t.Parallel()

	s, _ := newTestStep(t, testfixtures.NewMockService())

	cmd := s.Update(testfixtures.Ctrl('s'))

	require.IsType(t, CreateRequestedMsg{}, cmd())
}

func TestTestStep_ReportBeforeAnyTest(t *testing.T) {
	t.Parallel()

	s, _ := newTestStep(t, testfixtures.NewMockService())
	s.View("")

	require.True(t, testfixtures.Contains(s.rendered, "No test has been run yet."))
}

func TestTestStep_ReportReplacedByNewResult(t *testing.T) {
	t.Parallel()

	svc := testfixtures.NewMockService()
	svc.TestResult = testfixtures.FailingTest()
	s, ctrl := newTestStep(t, svc)

	op, err := ctrl.StartTest(context.Background())
	require.NoError(t, err)
	require.NoError(t, ctrl.Run(op))
	s.View("")
	require.True(t, testfixtures.Contains(s.rendered, "Test failed"))
	require.True(t, testfixtures.Contains(s.rendered, "Page returned 404"))

	svc.TestResult = testfixtures.PassingTest()
	op, err = ctrl.StartTest(context.Background())
	require.NoError(t, err)
	require.NoError(t, ctrl.Run(op))
	s.View("")
	require.True(t, testfixtures.Contains(s.rendered, "Test passed"))
	require.False(t, testfixtures.Contains(s.rendered, "Page returned 404"), "the old result is discarded")
}

func TestTestStep_PreviewToggle(t *testing.T) {
	t.Parallel()

	s, _ := newTestStep(t, testfixtures.NewMockService())

	s.Update(testfixtures.Ctrl('p'))
	require.True(t, s.Previewing())
	view := s.View("")
	require.True(t, testfixtures.Contains(view, "Configuration preview"))
	require.True(t, testfixtures.Contains(s.rendered, "domain: shop.example"))

	s.Update(testfixtures.Ctrl('p'))
	require.False(t, s.Previewing())
	require.True(t, testfixtures.Contains(s.View(""), "Test report"))
}
