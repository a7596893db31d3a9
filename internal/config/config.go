package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ID strategies understood by tabs.id_strategy.
const (
	IDStrategyTimestamp = "timestamp"
	IDStrategyUUID      = "uuid"
)

// Config holds application configuration.
type Config struct {
	API   APIConfig    `mapstructure:"api"`
	Tabs  TabsConfig   `mapstructure:"tabs"`
	Log   LogConfig    `mapstructure:"log"`
	UI    UIConfig     `mapstructure:"ui"`
	Stats []StatConfig `mapstructure:"stats"`
}

// APIConfig points at the remote tabs resource.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TabsConfig holds tab creation settings.
type TabsConfig struct {
	IDStrategy string `mapstructure:"id_strategy"`
}

// LogConfig holds diagnostic log settings. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title    string `mapstructure:"title"`
	Subtitle string `mapstructure:"subtitle"`
}

// StatConfig is one static stat card shown in the header row.
type StatConfig struct {
	Name   string `mapstructure:"name"`
	Value  string `mapstructure:"value"`
	Change string `mapstructure:"change"`
	Icon   string `mapstructure:"icon"`
}

// DefaultStats are the stat cards shown when the config file does not list any.
var DefaultStats = []StatConfig{
	{Name: "Total Users", Value: "1,234", Change: "+12% from last month", Icon: "👥"},
	{Name: "Revenue", Value: "$5,678", Change: "+8% from last month", Icon: "💰"},
	{Name: "Tasks", Value: "56", Change: "-3% from last month", Icon: "✅"},
	{Name: "Projects", Value: "24", Change: "+5% from last month", Icon: "📁"},
}

// flag name -> config key
var flagKeys = map[string]string{
	"api":      "api.base_url",
	"timeout":  "api.timeout",
	"log-file": "log.path",
	"id":       "tabs.id_strategy",
}

// Load reads configuration from defaults, a TOML file, env and flags, in that
// order of precedence (flags win). Env var overrides use prefix JASKDASH_.
// A .env file in the working directory is loaded first when present.
func Load(flags *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("api.base_url", "http://localhost:8787")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("tabs.id_strategy", IDStrategyTimestamp)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "jaskdash", "jaskdash.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Dashboard")
	v.SetDefault("ui.subtitle", "Welcome back! Here's what's happening today.")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKDASH_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "jaskdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Stats) == 0 {
		c.Stats = append([]StatConfig(nil), DefaultStats...)
	}
	if flags != nil {
		if f := flags.Lookup("verbose"); f != nil && f.Changed && f.Value.String() == "true" {
			c.Log.Level = "debug"
		}
	}
	return c, c.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("api.base_url: missing host")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	switch strings.ToLower(strings.TrimSpace(c.Tabs.IDStrategy)) {
	case IDStrategyTimestamp, IDStrategyUUID:
	default:
		return fmt.Errorf("tabs.id_strategy: unknown strategy %q", c.Tabs.IDStrategy)
	}
	return nil
}
