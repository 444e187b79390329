package client

import (
	"context"
	"strings"

	"github.com/mark3labs/sitewizard/internal/site"
)

type analyzeRequest struct {
	URL string `json:"url"`
}

type testRequest struct {
	Domain  string      `json:"domain"`
	TestURL string      `json:"test_url"`
	Config  site.Config `json:"config"`
}

// Analyze asks the service to inspect url and propose a configuration.
// A response that reports analysis_successful=false is an error.
func (c *Client) Analyze(ctx context.Context, url string) (*site.AnalysisResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, site.Invalid("URL", site.ErrEmpty)
	}

	result, err := postJSON[site.AnalysisResult](ctx, c, "analyze", "/analyze-site", analyzeRequest{URL: url})
	if err != nil {
		return nil, err
	}
	if !result.AnalysisSuccessful {
		return nil, &site.RemoteError{Op: "analyze", Message: "The service could not analyze this page."}
	}

	c.log.Debug("analyze: %s suggested %d fields", result.Domain, len(result.SuggestedFields()))
	return result, nil
}

// Test runs cfg against testURL. An unsuccessful extraction is a normal
// result, not an error.
func (c *Client) Test(ctx context.Context, domain, testURL string, cfg site.Config) (*site.TestResult, error) {
	testURL = strings.TrimSpace(testURL)
	if testURL == "" {
		return nil, site.Invalid("test URL", site.ErrEmpty)
	}
	if cfg.Selectors == nil {
		cfg.Selectors = site.NewSelectorMap()
	}

	result, err := postJSON[site.TestResult](ctx, c, "test", "/test-configuration", testRequest{
		Domain:  domain,
		TestURL: testURL,
		Config:  cfg,
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug("test: success=%t issues=%d", result.Success, len(result.Issues))
	return result, nil
}

// Create stores cfg as a new site.
func (c *Client) Create(ctx context.Context, cfg site.Config) (*site.CreateResult, error) {
	if cfg.Selectors == nil {
		cfg.Selectors = site.NewSelectorMap()
	}

	result, err := postJSON[site.CreateResult](ctx, c, "create", "/create-site", cfg)
	if err != nil {
		return nil, err
	}

	c.log.Info("create: site %d (%s)", result.SiteID, result.Domain)
	return result, nil
}
