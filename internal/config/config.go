package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/exgen-labs/exgen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyTemplatesDir = "templates_dir"
	KeyColor        = "color"
	KeyDefaultKind  = "default_kind"
)

var descriptions = map[string]string{
	KeyTemplatesDir: "catalog directory used instead of the built-in templates",
	KeyColor:        "colored output (true/false)",
	KeyDefaultKind:  "file-kind selection used by generate:module without --kind",
}

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(descriptions))
	for k := range descriptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns a one-line description of a known key.
func Describe(key string) string { return descriptions[key] }

// Dir returns the config directory: $EXGEN_HOME when set, else ~/.exgen.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
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
	viper.SetDefault(KeyColor, true)

	// A missing config file is fine.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// TemplatesDir returns the configured catalog directory, or "" for the
// built-in catalog.
func TemplatesDir() string { return viper.GetString(KeyTemplatesDir) }

// ColorEnabled reports whether styled output is enabled.
func ColorEnabled() bool { return viper.GetBool(KeyColor) }

// DefaultKind returns the configured default file-kind selection.
func DefaultKind() string { return viper.GetString(KeyDefaultKind) }

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := descriptions[key]; !ok {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	if key == KeyColor {
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid value %q for %s: want true or false", value, key)
		}
	}

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
