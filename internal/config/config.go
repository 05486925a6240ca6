package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pokesearch/internal/lookup"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingBaseURL    = errors.New("base URL is not configured")
	ErrInvalidTimeout    = errors.New("timeout must be positive")
	ErrInvalidRateLimit  = errors.New("rate limit cannot be negative")
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

const DefaultTimeout = lookup.DefaultTimeout

type Config struct {
	BaseURL   string   `yaml:"base_url" toml:"base_url"`
	Timeout   Duration `yaml:"timeout" toml:"timeout"`
	RateLimit float64  `yaml:"rate_limit" toml:"rate_limit"`
	LogFile   string   `yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	Verbose   bool     `yaml:"verbose" toml:"verbose"`
}

func Default() Config {
	return Config{
		Timeout: Duration(DefaultTimeout),
	}
}

// Load reads the config file at path. The format follows the extension:
// .yaml/.yml or .toml. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in the format matching its extension.
func Save(cfg Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrMissingBaseURL
	}
	if _, err := lookup.ParseBaseURL(c.BaseURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidRateLimit, c.RateLimit)
	}
	return nil
}

func (c Config) ClientOptions() lookup.Options {
	return lookup.Options{
		BaseURL:   c.BaseURL,
		Timeout:   time.Duration(c.Timeout),
		RateLimit: c.RateLimit,
	}
}

// Duration reads and writes durations as strings like "10s" in both formats.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
