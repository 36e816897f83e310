package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print row counts for every storefront table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "TABLA\tFILAS\n")
		for _, table := range db.Tables {
			n, err := database.Count(table)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%d\n", table, n)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
