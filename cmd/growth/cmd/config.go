package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meenmo/growthrate/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after defaults, the --config file and GROWTH_*
environment variables have been applied. The output can be saved and passed
back with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Write(cmd.OutOrStdout(), a.cfg, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml or yaml)")
	return cmd
}
