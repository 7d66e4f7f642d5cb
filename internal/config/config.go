// Package config loads the configuration of the moneycalc command from an
// optional YAML file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/exactmoney/money"
	"github.com/exactmoney/money/display"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the command configuration.
type Config struct {
	DefaultCurrency string `yaml:"default_currency" validate:"required,uppercase,len=3,known_currency"`
	Locale          string `yaml:"locale" validate:"required,bcp47_language_tag"`
	Style           string `yaml:"style" validate:"required,oneof=symbol code name pattern"`
	Pattern         string `yaml:"pattern" validate:"required_if=Style pattern"`
	Round           bool   `yaml:"round"`
	LogFormat       string `yaml:"log_format" validate:"required,oneof=logfmt json"`
	LogLevel        string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
}

// Default returns the configuration used when neither a file nor flags
// say otherwise.
func Default() Config {
	return Config{
		DefaultCurrency: money.DefaultCurrency.Code(),
		Locale:          display.DefaultLocale,
		Style:           display.Symbol.String(),
		LogFormat:       "logfmt",
		LogLevel:        "info",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("known_currency", func(fl validator.FieldLevel) bool {
		_, err := money.ParseCurr(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("registering validation: %v", err))
	}
	return v
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadFile overrides c with the fields present in the YAML file.
// Unknown fields are rejected.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Load registers the flags on fs, parses args and returns the resulting
// configuration together with the remaining positional arguments.
// Values are taken, in increasing priority, from [Default], from the file
// named by --config and from the other flags.
// Flags must precede positional arguments, so that negative numbers are not
// mistaken for flags.
func Load(fs *pflag.FlagSet, args []string) (*Config, []string, error) {
	cfg := Default()

	path := fs.StringP("config", "c", "", "path to a YAML configuration file")
	curr := fs.String("currency", cfg.DefaultCurrency, "currency of operands written as :AMOUNT")
	locale := fs.StringP("locale", "l", cfg.Locale, "locale used to display money, e.g. en_US or fr-FR")
	style := fs.StringP("style", "s", cfg.Style, "display style: symbol, code, name or pattern")
	pattern := fs.StringP("pattern", "p", "", "display pattern, e.g. '¤¤ #,##0.00'; implies --style=pattern")
	round := fs.BoolP("round", "r", cfg.Round, "round amounts instead of rejecting excess precision")
	logFormat := fs.String("log-format", cfg.LogFormat, "log format: logfmt or json")
	logLevel := fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.SetInterspersed(false)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return nil, nil, err
		}
	}

	if fs.Changed("currency") {
		cfg.DefaultCurrency = *curr
	}
	if fs.Changed("locale") {
		cfg.Locale = *locale
	}
	if fs.Changed("style") {
		cfg.Style = *style
	}
	if fs.Changed("pattern") {
		cfg.Pattern = *pattern
		cfg.Style = display.Pattern.String()
	}
	if fs.Changed("round") {
		cfg.Round = *round
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = *logFormat
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, fs.Args(), nil
}

// Currency returns the default currency.
func (c *Config) Currency() (money.Currency, error) {
	return money.ParseCurr(c.DefaultCurrency)
}

// Policy returns the construction policy for operands.
func (c *Config) Policy() money.Policy {
	if c.Round {
		return money.Round
	}
	return money.Strict
}

// Formatter returns the formatter described by the display settings.
func (c *Config) Formatter() (*display.Formatter, error) {
	style, err := display.ParseStyle(c.Style)
	if err != nil {
		return nil, err
	}
	opt := display.WithStyle(style)
	if style == display.Pattern {
		opt = display.WithPattern(c.Pattern)
	}
	return display.New(c.Locale, opt)
}
