package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/sitewizard/internal/tui"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

var newFlags struct {
	exportDir string
}

var newCmd = &cobra.Command{
	Use:   "new [url]",
	Short: "Onboard a new site with the interactive wizard",
	Long: `Onboard a new site with the interactive wizard.

The wizard has three steps:
  1. Analyze   the service inspects a product page and suggests selectors
  2. Configure review the site settings and edit the field → selector map
  3. Test      run the configuration against a live page, then create the site

An optional URL pre-fills the first step. Press ctrl+o in a later step to
export the configuration as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newFlags.exportDir, "output", "o", "", "Directory for exported configs (default: export_dir from config)")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var url string
	if len(args) > 0 {
		url = args[0]
	}
	exportDir := newFlags.exportDir
	if exportDir == "" {
		exportDir = cfg.ExportDir
	}

	ctrl := wizard.New(newClient(cfg))
	if err := tui.Run(cmd.Context(), ctrl, tui.Options{URL: url, ExportDir: exportDir}); err != nil {
		return fmt.Errorf("site wizard failed: %w", err)
	}
	return nil
}
