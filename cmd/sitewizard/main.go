package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/sitewizard/internal/client"
	"github.com/mark3labs/sitewizard/internal/config"
	"github.com/mark3labs/sitewizard/internal/logger"
	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui/theme"
)

const (
	logoText1 = "█▀ █ ▀█▀ █▀▀ █ █ █ █ ▀█ ▄▀█ █▀█ █▀▄"
	logoText2 = "▄█ █  █  ██▄ ▀▄▀▄▀ █ █▄ █▀█ █▀▄ █▄▀"
)

// Version set via ldflags during build
var version = "dev"

var rootFlags struct {
	apiURL string
}

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sitewizard",
	Short: "Onboard new e-commerce sites for price and stock tracking",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

sitewizard walks you through onboarding a new e-commerce site: it asks the
site service to analyze a product page, lets you review and edit the suggested
CSS selectors, tests the configuration against a live page and creates the
site once you are happy with it.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./sitewizard.yml
Global config: ~/.config/sitewizard/sitewizard.yml`

	rootCmd.PersistentFlags().StringVar(&rootFlags.apiURL, "api-url", "", "Site service base URL (overrides config)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadConfig loads configuration, applies global flags and configures the
// logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if rootFlags.apiURL != "" {
		cfg.APIURL = rootFlags.apiURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *client.Client {
	c := client.New(cfg.APIURL, cfg.Timeout)
	logger.Debug("Using site service at %s", c.BaseURL())
	return c
}

// serviceError turns a failed call into the message shown on the command
// line. Failures reported by the service name the service they came from.
func serviceError(c *client.Client, err error) error {
	msg := site.UserMessage(err)
	if client.IsRemote(err) {
		logger.Warn("site service at %s: %v", c.BaseURL(), err)
		return fmt.Errorf("%s (site service at %s)", msg, c.BaseURL())
	}
	return errors.New(msg)
}
