// Package config resolves settings from flags, SHIFTCLIP_* environment
// variables, config.yaml and defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"shiftclip/internal/format"
	"shiftclip/internal/store"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SHIFTCLIP"

const (
	KeyDataDir      = "data_dir"
	KeyBackend      = "backend"
	KeyFormat       = "format"
	KeyPretty       = "pretty"
	KeyVerbosity    = "verbosity"
	KeyTheme        = "theme"
	KeySearchLimit  = "search_limit"
	KeyToastSeconds = "toast_seconds"
)

type Config struct {
	DataDir      string
	Backend      store.Backend
	Format       format.Format
	Pretty       bool
	Verbosity    int
	Theme        store.Theme
	SearchLimit  int
	ToastSeconds int

	// File is the config file that was read, if any.
	File string
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDataDir, store.DefaultDataDir())
	v.SetDefault(KeyBackend, string(store.BackendSQLite))
	v.SetDefault(KeyFormat, string(format.Auto))
	v.SetDefault(KeyPretty, false)
	v.SetDefault(KeyVerbosity, 0)
	v.SetDefault(KeyTheme, string(store.ThemeDark))
	v.SetDefault(KeySearchLimit, 5)
	v.SetDefault(KeyToastSeconds, 5)
	return v
}

// BindFlags maps persistent flags onto config keys. Flag names use dashes.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	binds := map[string]string{
		KeyDataDir:   "dir",
		KeyBackend:   KeyBackend,
		KeyFormat:    KeyFormat,
		KeyPretty:    KeyPretty,
		KeyVerbosity: "verbose",
	}
	for key, name := range binds {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads cfgFile, or config.yaml from store.ConfigDir() when cfgFile is
// empty. A missing default config file is fine; a missing explicit one is not.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(store.ConfigDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	backend, err := store.ParseBackend(v.GetString(KeyBackend))
	if err != nil {
		return Config{}, err
	}
	f, err := format.Parse(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, err
	}
	theme := store.Theme(strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))))
	switch theme {
	case store.ThemeDark, store.ThemeLight:
	default:
		return Config{}, fmt.Errorf("invalid theme: %s (expected dark|light)", theme)
	}

	cfg := Config{
		DataDir:      strings.TrimSpace(v.GetString(KeyDataDir)),
		Backend:      backend,
		Format:       f,
		Pretty:       v.GetBool(KeyPretty),
		Verbosity:    v.GetInt(KeyVerbosity),
		Theme:        theme,
		SearchLimit:  v.GetInt(KeySearchLimit),
		ToastSeconds: v.GetInt(KeyToastSeconds),
		File:         v.ConfigFileUsed(),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = store.DefaultDataDir()
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 5
	}
	if cfg.ToastSeconds <= 0 {
		cfg.ToastSeconds = 5
	}
	return cfg, nil
}
