package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/sitewizard/internal/export"
	"github.com/mark3labs/sitewizard/internal/wizard"
)

var analyzeFlags struct {
	output string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze a product page and export the suggested config",
	Long: `Analyze a product page without the interactive wizard.

The suggested configuration is seeded exactly as the wizard would seed it and
written as YAML to <output>/<site-name>.yml. Edit the file, then run
'sitewizard test' and 'sitewizard create' against it.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlags.output, "output", "o", "", "Output directory (default: export_dir from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := newClient(cfg)
	ctrl := wizard.New(c)
	op, err := ctrl.StartAnalyze(cmd.Context(), args[0])
	if err != nil {
		return serviceError(c, err)
	}
	if err := ctrl.Run(op); err != nil {
		return serviceError(c, err)
	}

	dir := analyzeFlags.output
	if dir == "" {
		dir = cfg.ExportDir
	}
	siteCfg := ctrl.Config()
	path, err := export.Save(dir, siteCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Analyzed %s (%d fields)\n", siteCfg.Domain, siteCfg.Selectors.Len())
	for _, f := range siteCfg.Selectors.Lint() {
		fmt.Fprintf(out, "  %s: %s\n", f.Severity, f)
	}
	fmt.Fprintf(out, "Config written to: %s\n", path)
	return nil
}
