package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/sitewizard/internal/wizard"
)

var createFlags struct {
	config string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a site from an exported config",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFlags.config, "config", "c", "", "Site config file written by analyze or the wizard")
	_ = createCmd.MarkFlagRequired("config")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	siteCfg, err := loadSiteConfig(createFlags.config)
	if err != nil {
		return err
	}

	c := newClient(cfg)
	result, err := c.Create(cmd.Context(), siteCfg)
	if err != nil {
		return serviceError(c, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), wizard.CreatedNotice(result, siteCfg.Domain))
	return nil
}
