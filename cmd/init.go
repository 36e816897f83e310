package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wonderchile configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the storefront and generates a .wonderchile.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
