package config

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/manifoldco/promptui"
)

var validate = validator.New()

// DefaultPath is where the wizard writes its result.
const DefaultPath = ".wonderchile.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to DefaultPath.
func RunWizard() (*Config, error) {
	fmt.Println("Bienvenido a WonderChile! Let's configure the storefront.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)
	cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)

	dbPrompt := promptui.Prompt{
		Label:   "SQLite database file",
		Default: cfg.Database,
	}
	if cfg.Database, err = dbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	emailPrompt := promptui.Prompt{
		Label:    "Administrator email",
		Default:  cfg.Admin.Email,
		Validate: validateEmail,
	}
	if cfg.Admin.Email, err = emailPrompt.Run(); err != nil {
		return nil, fmt.Errorf("admin email: %w", err)
	}

	passPrompt := promptui.Prompt{
		Label: "Administrator password",
		Mask:  '*',
		Validate: func(s string) error {
			if len(s) < 8 {
				return fmt.Errorf("password must have at least 8 characters")
			}
			return nil
		},
	}
	if cfg.Admin.Password, err = passPrompt.Run(); err != nil {
		return nil, fmt.Errorf("admin password: %w", err)
	}

	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{string(LogFormatConsole), string(LogFormatJSON)},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = LogFormat(format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func validateEmail(s string) error {
	if err := validate.Var(s, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
