package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wonderchile",
	Short: "WonderChile travel storefront",
	Long: `WonderChile serves the travel storefront: trip catalog, promotions,
contact form, shopping cart and the admin panel. The same binary seeds demo
data, inspects the database and drives the cart endpoints from the terminal.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
