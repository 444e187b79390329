package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mark3labs/sitewizard/internal/export"
	"github.com/mark3labs/sitewizard/internal/site"
	"github.com/mark3labs/sitewizard/internal/tui"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

var testFlags struct {
	config string
	url    string
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test an exported config against a live page",
	Long: `Test an exported site config against a live product page and print the
report. An unsuccessful extraction is reported, not treated as an error; the
command only fails when the config is invalid or the service cannot be reached.`,
	RunE: runTest,
}

func init() {
	testCmd.Flags().StringVarP(&testFlags.config, "config", "c", "", "Site config file written by analyze or the wizard")
	testCmd.Flags().StringVarP(&testFlags.url, "url", "u", "", "Product page to test against")
	_ = testCmd.MarkFlagRequired("config")
	_ = testCmd.MarkFlagRequired("url")
}

func runTest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	siteCfg, err := loadSiteConfig(testFlags.config)
	if err != nil {
		return err
	}

	c := newClient(cfg)
	result, err := c.Test(cmd.Context(), siteCfg.Domain, testFlags.url, siteCfg)
	if err != nil {
		return serviceError(c, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(export.Report(result), 100))
	return nil
}

// loadSiteConfig reads an exported config and checks it passes the same
// gate the wizard applies before testing.
func loadSiteConfig(path string) (site.Config, error) {
	siteCfg, err := export.Load(path)
	if err != nil {
		return site.Config{}, err
	}
	if errs := wizard.TestGateErrors(siteCfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return site.Config{}, fmt.Errorf("%s is not ready:\n  %s", path, strings.Join(msgs, "\n  "))
	}
	return siteCfg, nil
}
