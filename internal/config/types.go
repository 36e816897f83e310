package config

// LogFormat selects the zap encoder used for application logs.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level storefront configuration, corresponding to .wonderchile.yml.
type Config struct {
	Port            int         `yaml:"port" koanf:"port"`
	Database        string      `yaml:"database" koanf:"database"`
	BaseURL         string      `yaml:"base_url" koanf:"base_url"`
	SecretKey       string      `yaml:"secret_key" koanf:"secret_key"`
	UploadDir       string      `yaml:"upload_dir" koanf:"upload_dir"`
	UploadPatterns  []string    `yaml:"upload_patterns" koanf:"upload_patterns"`
	MaxUploadMB     int         `yaml:"max_upload_mb" koanf:"max_upload_mb"`
	SessionTTLHours int         `yaml:"session_ttl_hours" koanf:"session_ttl_hours"`
	AllowAllOrigins bool        `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Admin           AdminConfig `yaml:"admin" koanf:"admin"`
	Gallery         []string    `yaml:"gallery" koanf:"gallery"`
	Log             LogConfig   `yaml:"log" koanf:"log"`
}

// AdminConfig describes the administrator account created on first boot.
type AdminConfig struct {
	Name     string `yaml:"name" koanf:"name"`
	Email    string `yaml:"email" koanf:"email"`
	Password string `yaml:"password" koanf:"password"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
