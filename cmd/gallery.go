package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/ui"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Print the rendered Instagram gallery fragment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fragment, err := ui.NewGallery(cfg.Gallery).HTML()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fragment)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(galleryCmd)
}
