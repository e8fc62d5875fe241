// Package config layers bundle settings from command-line flags,
// FIB_* environment variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyLanguage         = "language"
	KeyOutput           = "output"
	KeyNote             = "note"
	KeySort             = "sort"
	KeyRemoveEmptyLines = "remove-empty-lines"
	KeyAuthor           = "author"
)

// EnvPrefix is prepended to every environment variable, e.g. FIB_SORT.
const EnvPrefix = "FIB"

// DefaultConfigName is looked up in the working directory when no
// explicit config file is given.
const DefaultConfigName = ".fib"

// Bundle holds the settings for the bundle command after layering.
type Bundle struct {
	Languages        []string
	Output           string
	Note             bool
	Sort             string
	RemoveEmptyLines bool
	Author           string
}

// Default returns the built-in bundle settings.
func Default() Bundle {
	return Bundle{
		Sort: "name",
	}
}

// Loader produces layered bundle settings.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader prepares a viper instance. configFile may be empty, in which
// case .fib.yaml (or .fib.yml) is looked up in workDir.
func NewLoader(configFile, workDir string) *Loader {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(workDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyLanguage, d.Languages)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyNote, d.Note)
	v.SetDefault(KeySort, d.Sort)
	v.SetDefault(KeyRemoveEmptyLines, d.RemoveEmptyLines)
	v.SetDefault(KeyAuthor, d.Author)

	return &Loader{v: v, configFile: configFile}
}

// BindFlags lets explicitly set flags override every other source.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{KeyLanguage, KeyOutput, KeyNote, KeySort, KeyRemoveEmptyLines, KeyAuthor} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and returns the layered settings.
// Priority: flags, then environment, then config file, then defaults.
// A missing .fib.yaml is fine; a missing explicit file or malformed YAML is not.
func (l *Loader) Load() (Bundle, error) {
	if l.configFile != "" {
		if _, err := os.Stat(l.configFile); err != nil {
			return Bundle{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Bundle{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Bundle{
		Languages:        l.v.GetStringSlice(KeyLanguage),
		Output:           l.v.GetString(KeyOutput),
		Note:             l.v.GetBool(KeyNote),
		Sort:             l.v.GetString(KeySort),
		RemoveEmptyLines: l.v.GetBool(KeyRemoveEmptyLines),
		Author:           l.v.GetString(KeyAuthor),
	}, nil
}

// ConfigFile returns the config file that was read, or "".
func (l *Loader) ConfigFile() string {
	if f := l.v.ConfigFileUsed(); f != "" {
		return filepath.Clean(f)
	}
	return ""
}
