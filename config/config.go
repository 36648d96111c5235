package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"

	"github.com/philipp01105/epilog/core"
	"github.com/philipp01105/epilog/formatter"
	"github.com/philipp01105/epilog/handler"
	"github.com/philipp01105/epilog/handler/consolehandler"
	"github.com/philipp01105/epilog/handler/filehandler"
	"github.com/philipp01105/epilog/logger"
)

var (
	// ErrParsingConfig wraps every configuration error
	ErrParsingConfig = errors.New("epilog configuration not valid")
)

// Supported EPILOG_FORMAT values
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatZapJSON    = "zap-json"
	FormatZapConsole = "zap-console"
)

// Supported EPILOG_OUTPUT values besides a file path
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// Config holds the environment-driven Manager settings.
type Config struct {
	Level           string `env:"EPILOG_LEVEL" envDefault:"INFO"`
	Format          string `env:"EPILOG_FORMAT" envDefault:"text"`
	Template        string `env:"EPILOG_TEMPLATE"`
	TimestampFormat string `env:"EPILOG_TIMESTAMP_FORMAT"`
	Output          string `env:"EPILOG_OUTPUT" envDefault:"stderr"`
	Color           bool   `env:"EPILOG_COLOR"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParsingConfig, err.Error())
	}
	return validated(cfg)
}

// LoadFrom reads the configuration from vars instead of the process
// environment
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParsingConfig, err.Error())
	}
	return validated(cfg)
}

func validated(cfg Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the level, format and output values
func (c Config) Validate() error {
	errorsList := make([]string, 0)

	if _, err := core.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: EPILOG_LEVEL: %w", ErrParsingConfig, err)
	}

	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON, FormatZapJSON, FormatZapConsole:
	default:
		errorsList = append(errorsList, fmt.Sprintf("EPILOG_FORMAT %q is not one of text, json, zap-json, zap-console", c.Format))
	}
	if strings.TrimSpace(c.Output) == "" {
		errorsList = append(errorsList, "EPILOG_OUTPUT must not be empty")
	}

	if len(errorsList) > 0 {
		return fmt.Errorf("%w: %s", ErrParsingConfig, strings.Join(errorsList, "; "))
	}
	return nil
}

// ParsedLevel returns the configured level
func (c Config) ParsedLevel() (core.Level, error) {
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return core.NotSetLevel, fmt.Errorf("%w: EPILOG_LEVEL: %w", ErrParsingConfig, err)
	}
	return level, nil
}

// Formatter builds the configured formatter
func (c Config) Formatter() formatter.Formatter {
	fc := formatter.Config{
		Template:        c.Template,
		TimestampFormat: c.TimestampFormat,
		IncludeCaller:   true,
		Colorize:        c.Color,
	}
	switch strings.ToLower(c.Format) {
	case FormatJSON:
		return formatter.NewJSONFormatter(fc)
	case FormatZapJSON:
		return formatter.NewZapFormatter(formatter.ZapConfig{})
	case FormatZapConsole:
		return formatter.NewZapFormatter(formatter.ZapConfig{Console: true})
	default:
		return formatter.NewTextFormatter(fc)
	}
}

// Stream builds the configured output handler. Any output other than
// "stderr" or "stdout" is a file path opened in append mode.
func (c Config) Stream() (handler.Handler, error) {
	switch strings.ToLower(c.Output) {
	case OutputStderr:
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stderr}), nil
	case OutputStdout:
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: os.Stdout}), nil
	}

	h, err := filehandler.NewFileHandler(filehandler.FileConfig{Filename: c.Output})
	if err != nil {
		return nil, fmt.Errorf("%w: EPILOG_OUTPUT: %w", ErrParsingConfig, err)
	}
	return h, nil
}

// Options converts the configuration to Manager options
func (c Config) Options() ([]logger.Option, error) {
	level, err := c.ParsedLevel()
	if err != nil {
		return nil, err
	}
	stream, err := c.Stream()
	if err != nil {
		return nil, err
	}
	return c.options(level, stream), nil
}

func (c Config) options(level core.Level, stream handler.Handler) []logger.Option {
	return []logger.Option{
		logger.WithStream(stream),
		logger.WithLevel(level),
		logger.WithFormatter(c.Formatter()),
	}
}

// NewManager builds a Manager from the environment. extra options are
// applied after the environment ones and win over them. If the Manager
// cannot be built, a stream opened for EPILOG_OUTPUT is closed again.
func NewManager(extra ...logger.Option) (*logger.Manager, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	level, err := cfg.ParsedLevel()
	if err != nil {
		return nil, err
	}
	stream, err := cfg.Stream()
	if err != nil {
		return nil, err
	}

	m, err := logger.NewManager(append(cfg.options(level, stream), extra...)...)
	if err != nil {
		if !handler.IsProtected(stream) {
			err = multierr.Append(err, stream.Close())
		}
		return nil, err
	}
	return m, nil
}
