// Package testfixtures provides a fake site service and helpers for TUI
// tests.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    svc := testfixtures.NewMockService()
//	    ctrl := wizard.New(svc)
//
//	    // Drive the UI...
//	    require.Equal(t, 1, svc.AnalyzeCount())
//	}
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/sitewizard/internal/site"
)

// MockService is a thread-safe fake of the site service. It answers with the
// configured results and records every call.
type MockService struct {
	mu sync.Mutex

	Analysis     *site.AnalysisResult
	AnalyzeErr   error
	TestResult   *site.TestResult
	TestErr      error
	CreateResult *site.CreateResult
	CreateErr    error

	analyzeURLs []string
	testURLs    []string
	tested      []site.Config
	created     []site.Config
}

// NewMockService returns a service that succeeds with the shop fixtures.
func NewMockService() *MockService {
	return &MockService{
		Analysis:     ShopAnalysis(),
		TestResult:   PassingTest(),
		CreateResult: Created(),
	}
}

// Analyze records url and returns the configured analysis.
func (m *MockService) Analyze(_ context.Context, url string) (*site.AnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyzeURLs = append(m.analyzeURLs, url)
	return m.Analysis, m.AnalyzeErr
}

// Test records the request and returns the configured test result.
func (m *MockService) Test(_ context.Context, _ string, testURL string, cfg site.Config) (*site.TestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.testURLs = append(m.testURLs, testURL)
	m.tested = append(m.tested, cfg)
	return m.TestResult, m.TestErr
}

// Create records cfg and returns the configured create result.
func (m *MockService) Create(_ context.Context, cfg site.Config) (*site.CreateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, cfg)
	return m.CreateResult, m.CreateErr
}

// AnalyzeURLs returns the URLs passed to Analyze.
func (m *MockService) AnalyzeURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.analyzeURLs...)
}

// AnalyzeCount returns how many times Analyze was called.
func (m *MockService) AnalyzeCount() int {
	return len(m.AnalyzeURLs())
}

// TestURLs returns the test URLs passed to Test.
func (m *MockService) TestURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.testURLs...)
}

// TestedConfigs returns the configurations passed to Test.
func (m *MockService) TestedConfigs() []site.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]site.Config(nil), m.tested...)
}

// CreatedConfigs returns the configurations passed to Create.
func (m *MockService) CreatedConfigs() []site.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]site.Config(nil), m.created...)
}
