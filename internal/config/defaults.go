package config

// DefaultGalleryPhotos is the fixed, ordered photo list shown in the
// "instagram" section of the home page.
var DefaultGalleryPhotos = []string{
	"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1469474968028-56623f02e42e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1589904205597-7cf0143c4d86?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1516483638261-f4dbaf036963?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
}

// DefaultUploadPatterns are the doublestar patterns an uploaded image name must match.
var DefaultUploadPatterns = []string{"*.{png,jpg,jpeg,gif,webp}"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	gallery := make([]string, len(DefaultGalleryPhotos))
	copy(gallery, DefaultGalleryPhotos)
	patterns := make([]string, len(DefaultUploadPatterns))
	copy(patterns, DefaultUploadPatterns)

	return &Config{
		Port:            5000,
		Database:        "wonderchile.db",
		BaseURL:         "http://localhost:5000",
		SecretKey:       "clave_secreta_wonderchile",
		UploadDir:       "static/uploads",
		UploadPatterns:  patterns,
		MaxUploadMB:     8,
		SessionTTLHours: 24 * 7,
		Admin: AdminConfig{
			Name:     "Administrador",
			Email:    "admin@wonderchile.cl",
			Password: "Admin123",
		},
		Gallery: gallery,
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
