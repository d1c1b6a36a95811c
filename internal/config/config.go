package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/replicate-labs/replicate/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyInitializer  = "initializer"
	KeyDependency   = "dependency"
	KeyMinToolchain = "min_toolchain_version"
	KeyLogLevel     = "log_level"
)

// Keys lists every recognized key in display order.
var Keys = []string{KeyInitializer, KeyDependency, KeyMinToolchain, KeyLogLevel}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Default values applied before the config file and environment are read.
const (
	DefaultInitializer = "cargo"
	DefaultDependency  = `clap = "2.33"`
	DefaultLogLevel    = "warn"
)

// Settings is the typed view of the configuration consumed by commands.
type Settings struct {
	Initializer  string
	Dependency   string
	MinToolchain string
	LogLevel     string
}

// Dir returns the path to the config directory (~/.replicate/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.replicate/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyInitializer, DefaultInitializer)
	viper.SetDefault(KeyDependency, DefaultDependency)
	viper.SetDefault(KeyMinToolchain, "")
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the effective settings. Load must be called first.
func Current() Settings {
	return Settings{
		Initializer:  viper.GetString(KeyInitializer),
		Dependency:   viper.GetString(KeyDependency),
		MinToolchain: viper.GetString(KeyMinToolchain),
		LogLevel:     viper.GetString(KeyLogLevel),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
