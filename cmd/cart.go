package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wonderchile/internal/cartclient"
)

var (
	cartServer      string
	cartEmail       string
	cartStatusCheck bool
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Use the storefront cart from the terminal",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <paquete>",
	Short: "Log in and add a product to the cart of a running server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		base := cartServer
		if base == "" {
			base = cfg.BaseURL
		}

		out := cmd.OutOrStdout()
		notifier := cartclient.NotifierFunc(func(msg string) { fmt.Fprintln(out, msg) })
		navigator := cartclient.NavigatorFunc(func(path string) { fmt.Fprintf(out, "-> %s%s\n", base, path) })

		opts := []cartclient.Option{cartclient.WithLogger(logger)}
		if cartStatusCheck {
			opts = append(opts, cartclient.WithStatusCheck())
		}
		client, err := cartclient.New(base, notifier, navigator, opts...)
		if err != nil {
			return err
		}

		if cartEmail != "" {
			pwPrompt := promptui.Prompt{Label: "Contraseña para " + cartEmail, Mask: '*'}
			password, err := pwPrompt.Run()
			if err != nil {
				return fmt.Errorf("password: %w", err)
			}
			if err := client.Login(cmd.Context(), cartEmail, password); err != nil {
				return err
			}
		}

		outcome := client.AddToCart(cmd.Context(), args[0])
		if outcome == cartclient.OutcomeFailed {
			return fmt.Errorf("cart request failed")
		}
		return nil
	},
}

func init() {
	cartAddCmd.Flags().StringVar(&cartServer, "server", "", "storefront base URL (defaults to base_url from config)")
	cartAddCmd.Flags().StringVar(&cartEmail, "email", "", "log in with this account before adding")
	cartAddCmd.Flags().BoolVar(&cartStatusCheck, "status-check", false, "treat non-2xx responses as failures")
	cartCmd.AddCommand(cartAddCmd)
	rootCmd.AddCommand(cartCmd)
}
