package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Invoice  InvoiceConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

// DatabaseConfig selects the storage backend. The default is a local sqlite
// file; driver "postgres" switches the same repositories to a server DSN.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type InvoiceConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	LogoPath  string `mapstructure:"logo_path"`
	Currency  string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "db/hospital.db")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("invoice.output_dir", defaultInvoiceDir())
	viper.SetDefault("invoice.currency", "₹")
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file falls back to defaults and env; anything else is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Invoice.OutputDir == "" {
		config.Invoice.OutputDir = defaultInvoiceDir()
	}

	return &config, nil
}

func defaultInvoiceDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "invoices"
	}
	return filepath.Join(home, "Documents")
}
