package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"telegraph/internal/logger"

	"github.com/BurntSushi/toml"
)

const (
	ProfileDefault = "Default"
	ProfileDevel   = "Devel"

	EnvConfigFile = "TELEGRAPH_CONFIG"
	EnvLogLevel   = "TELEGRAPH_LOG_LEVEL"
	EnvJSONLogs   = "TELEGRAPH_JSON_LOGS"
	EnvProfile    = "TELEGRAPH_PROFILE"
)

var ErrUnknownProfile = errors.New("unknown profile")

type Config struct {
	LogLevel       string   `toml:"log_level"`
	JSONLogs       bool     `toml:"json_logs"`
	Profile        string   `toml:"profile"`
	InitialMessage string   `toml:"initial_message"`
	ToastDuration  Duration `toml:"toast_duration"`
}

// Duration reads TOML strings such as "2s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		JSONLogs:       false,
		Profile:        ProfileDefault,
		InitialMessage: "SOS",
		ToastDuration:  Duration{2 * time.Second},
	}
}

func DevelConfig() Config {
	config := DefaultConfig()
	config.LogLevel = "debug"
	config.Profile = ProfileDevel
	return config
}

// Load starts from the profile defaults, applies the TOML file named by
// TELEGRAPH_CONFIG when set, then the remaining environment overrides.
func Load() (Config, error) {
	config := DefaultConfig()
	if strings.EqualFold(os.Getenv(EnvProfile), ProfileDevel) {
		config = DevelConfig()
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := config.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadFile overlays the TOML file on c. A file that selects the Devel
// profile without naming a log level gets the Devel level.
func (c *Config) LoadFile(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c.Profile = normalizeProfile(c.Profile)
	if c.IsDevel() && !meta.IsDefined("log_level") {
		c.LogLevel = DevelConfig().LogLevel
	}
	return nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if os.Getenv(EnvJSONLogs) == "true" {
		c.JSONLogs = true
	}
	if profile := os.Getenv(EnvProfile); profile != "" {
		c.Profile = normalizeProfile(profile)
	}
}

func normalizeProfile(profile string) string {
	for _, known := range []string{ProfileDefault, ProfileDevel} {
		if strings.EqualFold(profile, known) {
			return known
		}
	}
	return profile
}

func (c Config) Validate() error {
	switch c.Profile {
	case ProfileDefault, ProfileDevel:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.ToastDuration.Duration <= 0 {
		return fmt.Errorf("toast duration must be positive, got %s", c.ToastDuration)
	}
	return nil
}

func (c Config) IsDevel() bool {
	return c.Profile == ProfileDevel
}
