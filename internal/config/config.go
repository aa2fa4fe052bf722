// Package config loads the configuration of the fxconvert command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/moneyfx/money"
	"github.com/moneyfx/money/quotes"
)

// EnvPrefix prefixes the environment variables overriding configuration
// keys, for example FXCONVERT_LOG_LEVEL for log.level.
const EnvPrefix = "FXCONVERT"

// Config is the root configuration.
type Config struct {
	// Logging
	Log LogConfig `mapstructure:"log"`
	// Defaults used when flags are omitted
	Format FormatConfig `mapstructure:"format"`
	// Currencies added to the ISO 4217 table
	Currencies []CurrencyConfig `mapstructure:"currencies" validate:"dive"`
	// Exchange quotes
	Quotes []quotes.Entry `mapstructure:"quotes" validate:"dive"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	// json or text
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

// FormatConfig configures how amounts are printed.
type FormatConfig struct {
	// BCP 47 tag, underscores are accepted
	Locale string `mapstructure:"locale" validate:"required"`
	// symbol, code, decimal or accounting
	Style string `mapstructure:"style" validate:"oneof=symbol code decimal accounting"`
}

// CurrencyConfig defines a custom currency.
type CurrencyConfig struct {
	Code   string `mapstructure:"code"   validate:"required"`
	Scale  int    `mapstructure:"scale"  validate:"min=0"`
	Symbol string `mapstructure:"symbol"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration file at path and applies environment overrides.
// An empty path loads the defaults and the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Format.Style = strings.ToLower(c.Format.Style)
	return validate.Struct(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("format.locale", "en-US")
	v.SetDefault("format.style", money.StyleSymbol.String())
}

// Registry returns the ISO 4217 registry extended with the custom currencies.
func (c *Config) Registry() (*money.Registry, error) {
	currs := make([]money.Currency, 0, len(c.Currencies))
	for _, cc := range c.Currencies {
		curr, err := money.NewCurrency(cc.Code, cc.Scale, cc.Symbol)
		if err != nil {
			return nil, err
		}
		currs = append(currs, curr)
	}
	return money.ISORegistry().With(currs...)
}

// Table returns the quote table described by the configuration.
func (c *Config) Table(reg *money.Registry) (*quotes.Table, error) {
	return quotes.NewTable(reg, c.Quotes...)
}

// Logger returns a logger writing to w with the configured level and format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if c.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
