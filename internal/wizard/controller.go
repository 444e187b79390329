package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/sitewizard/internal/logger"
	"github.com/mark3labs/sitewizard/internal/site"
)

// ErrWrongStep is returned when an operation is triggered outside the step
// that owns it.
var ErrWrongStep = errors.New("not available in this step")

// Service is the remote side of the wizard. *client.Client implements it.
type Service interface {
	Analyze(ctx context.Context, url string) (*site.AnalysisResult, error)
	Test(ctx context.Context, domain, testURL string, cfg site.Config) (*site.TestResult, error)
	Create(ctx context.Context, cfg site.Config) (*site.CreateResult, error)
}

// Controller owns the wizard state and every transition of it.
//
// Remote operations are split in two halves: Start* validates locally, marks
// the operation in flight and returns an Op; Apply folds the Op's completion
// back into state. Both halves must run on the same goroutine.
type Controller struct {
	svc   Service
	state State
	log   *logger.Logger

	analyze *Call
	test    *Call
	create  *Call

	notice string
}

// New returns a controller at the analyze step with an empty configuration.
func New(svc Service) *Controller {
	return &Controller{
		svc:     svc,
		state:   newState(),
		log:     logger.Named("wizard"),
		analyze: newCall("analysis"),
		test:    newCall("test"),
		create:  newCall("create"),
	}
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.state.Step
}

// State returns a snapshot of the wizard state. The selector map is shared
// with the controller; edit it through Selectors.
func (c *Controller) State() State {
	return c.state
}

// Analysis returns the last successful analysis, or nil.
func (c *Controller) Analysis() *site.AnalysisResult {
	return c.state.Analysis
}

// Config returns a copy of the configuration being built.
func (c *Controller) Config() site.Config {
	return c.state.Config.Clone()
}

// Selectors returns the live selector map.
func (c *Controller) Selectors() *site.SelectorMap {
	if c.state.Config.Selectors == nil {
		c.state.Config.Selectors = site.NewSelectorMap()
	}
	return c.state.Config.Selectors
}

// TestURL returns the page used for test runs.
func (c *Controller) TestURL() string {
	return c.state.TestURL
}

// TestResult returns the outcome of the last test, or nil.
func (c *Controller) TestResult() *site.TestResult {
	return c.state.TestResult
}

// Notice returns the confirmation of the last successful create.
func (c *Controller) Notice() string {
	return c.notice
}

// AnalyzeCall, TestCall and CreateCall expose the per-operation lifecycle.
func (c *Controller) AnalyzeCall() *Call { return c.analyze }
func (c *Controller) TestCall() *Call    { return c.test }
func (c *Controller) CreateCall() *Call  { return c.create }

// Busy reports whether any request is outstanding.
func (c *Controller) Busy() bool {
	return c.analyze.Busy() || c.test.Busy() || c.create.Busy()
}

// Config field setters. Values are stored as given; the test gate decides
// whether they are acceptable.

func (c *Controller) SetName(name string)            { c.state.Config.Name = name }
func (c *Controller) SetDomain(domain string)        { c.state.Config.Domain = domain }
func (c *Controller) SetUseJavaScript(v bool)        { c.state.Config.UseJavaScript = v }
func (c *Controller) SetRequiresProxy(v bool)        { c.state.Config.RequiresProxy = v }
func (c *Controller) SetRequestDelay(d float64)      { c.state.Config.RequestDelay = d }
func (c *Controller) SetTestURL(testURL string)      { c.state.TestURL = testURL }
func (c *Controller) SetHeaders(h map[string]string) { c.state.Config.Headers = h }

// CanAdvance reports whether Advance would move forward.
func (c *Controller) CanAdvance() bool {
	return c.state.Step < StepTest && c.GateError() == nil
}

// GateError explains why the current step cannot be left, or returns nil.
// The step is held while an analysis is outstanding.
func (c *Controller) GateError() error {
	if c.state.Step >= StepTest {
		return nil
	}
	if c.analyze.Busy() {
		return site.Invalid("analysis", ErrBusy)
	}
	return gateError(c.state)
}

// Advance moves one step forward when the current step's gate holds.
func (c *Controller) Advance() bool {
	if !c.CanAdvance() {
		return false
	}
	c.state.Step++
	c.log.Debug("advance to %s", c.state.Step)
	return true
}

// Retreat moves one step back. State entered in later steps is kept.
func (c *Controller) Retreat() bool {
	if c.state.Step <= StepAnalyze {
		return false
	}
	c.state.Step--
	c.log.Debug("retreat to %s", c.state.Step)
	return true
}

// StartAnalyze validates url and returns the Op that analyzes it.
func (c *Controller) StartAnalyze(ctx context.Context, url string) (Op, error) {
	if c.state.Step != StepAnalyze {
		return nil, site.Invalid("analysis", ErrWrongStep)
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, site.Invalid("URL", site.ErrEmpty)
	}
	if err := c.analyze.Begin(); err != nil {
		return nil, err
	}

	c.log.Info("analyzing %s", url)
	svc := c.svc
	return func() Msg {
		result, err := svc.Analyze(ctx, url)
		return AnalyzeDoneMsg{URL: url, Result: result, Err: err}
	}, nil
}

// StartTest returns the Op that runs the current configuration against the
// test URL. The configuration is captured when the Op is created.
func (c *Controller) StartTest(ctx context.Context) (Op, error) {
	if c.state.Step != StepTest {
		return nil, site.Invalid("test", ErrWrongStep)
	}
	testURL := strings.TrimSpace(c.state.TestURL)
	if testURL == "" {
		return nil, site.Invalid("test URL", site.ErrEmpty)
	}
	if errs := TestGateErrors(c.state.Config); len(errs) > 0 {
		return nil, site.Invalid("", errors.Join(errs...))
	}
	if err := c.test.Begin(); err != nil {
		return nil, err
	}

	cfg := c.state.Config.Clone()
	c.log.Info("testing %s against %s", cfg.Domain, testURL)
	svc := c.svc
	return func() Msg {
		result, err := svc.Test(ctx, cfg.Domain, testURL, cfg)
		return TestDoneMsg{Result: result, Err: err}
	}, nil
}

// StartCreate returns the Op that stores the current configuration. A test
// run is not required.
func (c *Controller) StartCreate(ctx context.Context) (Op, error) {
	if c.state.Step != StepTest {
		return nil, site.Invalid("create", ErrWrongStep)
	}
	if errs := TestGateErrors(c.state.Config); len(errs) > 0 {
		return nil, site.Invalid("", errors.Join(errs...))
	}
	if err := c.create.Begin(); err != nil {
		return nil, err
	}

	cfg := c.state.Config.Clone()
	c.notice = ""
	c.log.Info("creating site %s", cfg.Domain)
	svc := c.svc
	return func() Msg {
		result, err := svc.Create(ctx, cfg)
		return CreateDoneMsg{Domain: cfg.Domain, Result: result, Err: err}
	}, nil
}

// Apply folds a completion into state. A failed completion leaves state as
// it was and returns the failure.
func (c *Controller) Apply(msg Msg) error {
	switch msg := msg.(type) {
	case AnalyzeDoneMsg:
		return c.applyAnalyze(msg)
	case TestDoneMsg:
		return c.applyTest(msg)
	case CreateDoneMsg:
		return c.applyCreate(msg)
	default:
		return fmt.Errorf("unexpected completion %T", msg)
	}
}

// Run performs op and applies its completion.
func (c *Controller) Run(op Op) error {
	return c.Apply(op())
}

func (c *Controller) applyAnalyze(msg AnalyzeDoneMsg) error {
	err := msg.Err
	if err == nil && msg.Result == nil {
		err = &site.RemoteError{Op: "analyze", Err: errors.New("empty response")}
	}
	c.analyze.Finish(err)
	if err != nil {
		c.log.Error("analysis of %s failed: %v", msg.URL, err)
		return err
	}

	// Only the analyze step seeds. A completion that finds the wizard
	// elsewhere is dropped so the operator's edits survive.
	if c.state.Step != StepAnalyze {
		c.log.Warn("analysis of %s finished outside the analyze step; result dropped", msg.URL)
		return nil
	}
	c.state.Analysis = msg.Result
	c.state.Config = Seed(msg.Result)
	c.state.TestResult = nil
	if strings.TrimSpace(c.state.TestURL) == "" {
		c.state.TestURL = msg.URL
	}
	c.log.Info("analysis of %s seeded %d fields", msg.URL, c.state.Config.Selectors.Len())

	c.Advance()
	return nil
}

func (c *Controller) applyTest(msg TestDoneMsg) error {
	err := msg.Err
	if err == nil && msg.Result == nil {
		err = &site.RemoteError{Op: "test", Err: errors.New("empty response")}
	}
	c.test.Finish(err)
	if err != nil {
		c.log.Error("test failed: %v", err)
		return err
	}

	c.state.TestResult = msg.Result
	c.log.Info("test finished: success=%t extracted=%d", msg.Result.Success, len(msg.Result.ExtractedData))
	return nil
}

func (c *Controller) applyCreate(msg CreateDoneMsg) error {
	err := msg.Err
	if err == nil && msg.Result == nil {
		err = &site.RemoteError{Op: "create", Err: errors.New("empty response")}
	}
	c.create.Finish(err)
	if err != nil {
		c.log.Error("create failed: %v", err)
		return err
	}

	c.notice = CreatedNotice(msg.Result, msg.Domain)
	c.log.Info("created site %d: %s", msg.Result.SiteID, c.notice)
	return nil
}

// CreatedNotice is the confirmation shown after a site was created. The
// domain echoed by the service wins over the one that was submitted.
func CreatedNotice(res *site.CreateResult, submitted string) string {
	domain := submitted
	if res != nil && res.Domain != "" {
		domain = res.Domain
	}
	return fmt.Sprintf("Site %s created successfully.", domain)
}
