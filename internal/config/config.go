// Package config loads CLI settings from resourcegen.yaml, RESOURCEGEN_*
// environment variables and bound command flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes environment overrides (RESOURCEGEN_LOCALE, ...).
const EnvPrefix = "RESOURCEGEN"

// Config represents the CLI configuration.
type Config struct {
	Schema         string `mapstructure:"schema"`
	Lang           string `mapstructure:"lang"`
	Locale         string `mapstructure:"locale"`
	FallbackLocale string `mapstructure:"fallback_locale"`
	LogLevel       string `mapstructure:"log_level"`
	Renderer       string `mapstructure:"renderer"`
	Theme          Theme  `mapstructure:"theme"`
}

// Theme styles the html preview.
type Theme struct {
	Name       string            `mapstructure:"name"`
	Variant    string            `mapstructure:"variant"`
	Tokens     map[string]string `mapstructure:"tokens"`
	Stylesheet string            `mapstructure:"stylesheet"`
}

// RendererTheme converts the theme section for the html renderer. It returns
// nil when no theme is configured.
func (c *Config) RendererTheme() *theme.RendererConfig {
	t := c.Theme
	if strings.TrimSpace(t.Name) == "" && len(t.Tokens) == 0 && t.Stylesheet == "" {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		Tokens:  t.Tokens,
	}
	if stylesheet := t.Stylesheet; stylesheet != "" {
		cfg.AssetURL = func(string) string { return stylesheet }
	}
	return cfg
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("schema", "resources")
	v.SetDefault("lang", "")
	v.SetDefault("locale", "en")
	v.SetDefault("fallback_locale", "en")
	v.SetDefault("log_level", "warn")
	v.SetDefault("renderer", "html")

	v.SetConfigName("resourcegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. An explicit file must exist; the implicit
// ./resourcegen.yaml is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Schema) == "" {
		return fmt.Errorf("config: schema path is required")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger builds a console logger writing to stderr at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(raw string) (zapcore.Level, error) {
	var level zapcore.Level
	if strings.TrimSpace(raw) == "" {
		return zapcore.WarnLevel, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return level, fmt.Errorf("config: invalid log_level %q: %w", raw, err)
	}
	return level, nil
}
