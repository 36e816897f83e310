package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/auth"
)

var loginCheckEmail string

var loginCheckCmd = &cobra.Command{
	Use:   "login-check",
	Short: "Verify an account's credentials against the database",
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

		email := loginCheckEmail
		if email == "" {
			email = cfg.Admin.Email
		}
		pwPrompt := promptui.Prompt{Label: "Contraseña para " + email, Mask: '*'}
		password, err := pwPrompt.Run()
		if err != nil {
			return fmt.Errorf("password: %w", err)
		}

		user, err := auth.NewStore(database).Authenticate(cmd.Context(), email, password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			fmt.Fprintln(cmd.OutOrStdout(), "Credenciales incorrectas")
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%s, rol %s)\n", user.Name, user.Email, user.Role)
		return nil
	},
}

func init() {
	loginCheckCmd.Flags().StringVar(&loginCheckEmail, "email", "", "account email (defaults to the configured admin)")
	rootCmd.AddCommand(loginCheckCmd)
}
