package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/seed"
	"github.com/ziadkadry99/wonderchile/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the storefront web server",
	Long:  `Starts the WonderChile storefront: public pages, cart API, admin panel and the live admin feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := seed.Bootstrap(ctx, database, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password, logger); err != nil {
			return fmt.Errorf("bootstrapping database: %w", err)
		}

		secure := false
		if u, err := url.Parse(cfg.BaseURL); err == nil {
			secure = u.Scheme == "https"
		}

		srv := server.New(server.Config{
			Port:           cfg.Port,
			BaseURL:        cfg.BaseURL,
			AllowAll:       cfg.AllowAllOrigins,
			SecretKey:      cfg.SecretKey,
			SessionTTL:     time.Duration(cfg.SessionTTLHours) * time.Hour,
			SecureCookies:  secure,
			UploadDir:      cfg.UploadDir,
			UploadPatterns: cfg.UploadPatterns,
			MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
			Gallery:        cfg.Gallery,
		}, database, logger)

		sf, err := srv.RegisterStorefront()
		if err != nil {
			return err
		}
		go srv.PurgeSessions(ctx, sf.Sessions, time.Hour)

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		logger.Info("wonderchile starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("database", database.Path()),
			zap.String("uploads", cfg.UploadDir),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVarP(&serverPort, "port", "p", 5000, "HTTP listen port (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
