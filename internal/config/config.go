package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Parse  ParseConfig
	Export ExportConfig
	CORS   CORSConfig
	Log    LogConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds document upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// ParseConfig holds document parsing settings.
type ParseConfig struct {
	// Concurrency bounds the number of blocks parsed in parallel.
	Concurrency int `mapstructure:"concurrency"`
}

// ExportConfig holds spreadsheet export defaults.
type ExportConfig struct {
	TimeSeconds   int    `mapstructure:"time_seconds"`
	Points        int    `mapstructure:"points"`
	QuizizzSuffix string `mapstructure:"quizizz_suffix"`
	GFormSuffix   string `mapstructure:"gform_suffix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the QUIZFORGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QUIZFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Parse defaults
	v.SetDefault("parse.concurrency", 4)

	// Export defaults (platform constants: Quizizz time per question,
	// Google Forms points per question)
	v.SetDefault("export.time_seconds", 60)
	v.SetDefault("export.points", 1)
	v.SetDefault("export.quizizz_suffix", "QUIZIZZ")
	v.SetDefault("export.gform_suffix", "GFORM")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "QUIZFORGE_SERVER_PORT",
		"server.read_timeout":     "QUIZFORGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "QUIZFORGE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "QUIZFORGE_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb": "QUIZFORGE_UPLOAD_MAX_FILE_SIZE_MB",
		"parse.concurrency":       "QUIZFORGE_PARSE_CONCURRENCY",
		"export.time_seconds":     "QUIZFORGE_EXPORT_TIME_SECONDS",
		"export.points":           "QUIZFORGE_EXPORT_POINTS",
		"export.quizizz_suffix":   "QUIZFORGE_EXPORT_QUIZIZZ_SUFFIX",
		"export.gform_suffix":     "QUIZFORGE_EXPORT_GFORM_SUFFIX",
		"cors.allowed_origins":    "QUIZFORGE_CORS_ALLOWED_ORIGINS",
		"log.level":               "QUIZFORGE_LOG_LEVEL",
		"log.format":              "QUIZFORGE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if QUIZFORGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("QUIZFORGE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Parse = ParseConfig{
		Concurrency: v.GetInt("parse.concurrency"),
	}
	cfg.Export = ExportConfig{
		TimeSeconds:   v.GetInt("export.time_seconds"),
		Points:        v.GetInt("export.points"),
		QuizizzSuffix: v.GetString("export.quizizz_suffix"),
		GFormSuffix:   v.GetString("export.gform_suffix"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
