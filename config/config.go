package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

func InitConfig() {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// The client binary usually runs outside a checkout, so a missing .env
	// is fine; environment variables still apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("LOCALE", "en")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STUB_LISTEN_ADDR", ":8080")
}

// APIBaseURL returns the backend base URL the client talks to.
func APIBaseURL() string {
	return viper.GetString("API_BASE_URL")
}

// TokenFile returns the path of the persisted access token file.
// Defaults to <user config dir>/recovery-cli/token.json.
func TokenFile() string {
	if path := viper.GetString("TOKEN_FILE"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "recovery-cli", "token.json")
}

// Locale returns the UI locale ("en" or "ru").
func Locale() string {
	return viper.GetString("LOCALE")
}

// LogLevel returns the configured log level.
func LogLevel() string {
	return viper.GetString("LOG_LEVEL")
}

// LogFile returns the log file path. The wizard always logs to a file so
// log lines do not corrupt the terminal UI.
func LogFile() string {
	if path := viper.GetString("LOG_FILE"); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "recovery-cli.log")
}

// StubListenAddr returns the listen address for the stub backend.
func StubListenAddr() string {
	return viper.GetString("STUB_LISTEN_ADDR")
}
