package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/progress"
	"github.com/ziadkadry99/wonderchile/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo users, trips, promotions and contacts",
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

		res, err := seed.Run(cmd.Context(), database, progress.NewReporter("Cargando datos"))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Base de datos poblada: %d usuarios, %d viajes, %d promociones, %d contactos nuevos\n",
			res.Users, res.Trips, res.Promotions, res.Contacts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
