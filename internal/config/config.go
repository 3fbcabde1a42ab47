package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
	"github.com/spf13/viper"
)

// Config is the application configuration, loaded from
// ~/.shopcal/config.yaml with SHOPCAL_* environment overrides.
type Config struct {
	DBPath   string            `mapstructure:"db_path"`
	Defaults DefaultsConfig    `mapstructure:"defaults"`
	View     ViewConfig        `mapstructure:"view"`
	Palette  map[string]string `mapstructure:"palette"`
}

// DefaultsConfig holds the values applied to newly created jobs when the
// user does not specify them.
type DefaultsConfig struct {
	PerDayHours   float64 `mapstructure:"per_day_hours"`
	ColorKey      string  `mapstructure:"color_key"`
	CalendarGroup string  `mapstructure:"calendar_group"`
}

// ViewConfig holds the calendar visibility toggles.
type ViewConfig struct {
	// ActiveGroups limits the calendar to jobs in these groups.
	// Empty means every group is shown.
	ActiveGroups []string `mapstructure:"active_groups"`
	ShowShipping bool     `mapstructure:"show_shipping"`
	ShowInHand   bool     `mapstructure:"show_in_hand"`
}

// Load reads configuration from the given file path, or from the default
// location when path is empty. A missing config file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}

	v.SetDefault("db_path", filepath.Join(home, ".shopcal", "shopcal.db"))
	v.SetDefault("defaults.per_day_hours", 8.0)
	v.SetDefault("defaults.color_key", "blue")
	v.SetDefault("defaults.calendar_group", "")
	v.SetDefault("view.show_shipping", true)
	v.SetDefault("view.show_in_hand", true)
	v.SetDefault("palette", map[string]string{
		"blue":   "#83a598",
		"green":  "#8ec07c",
		"yellow": "#fabd2f",
		"purple": "#d3869b",
		"orange": "#fe8019",
		"red":    "#fb4934",
	})

	v.SetEnvPrefix("SHOPCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".shopcal"))
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Defaults.PerDayHours <= 0 {
		return nil, fmt.Errorf("defaults.per_day_hours must be positive, got %v", cfg.Defaults.PerDayHours)
	}
	return &cfg, nil
}

// Filter translates the view configuration into a projector filter.
func (c *Config) Filter() scheduler.ViewFilter {
	filter := scheduler.ViewFilter{
		ShowShipping: c.View.ShowShipping,
		ShowInHand:   c.View.ShowInHand,
	}
	if len(c.View.ActiveGroups) > 0 {
		filter.ActiveGroups = make(map[string]bool, len(c.View.ActiveGroups))
		for _, g := range c.View.ActiveGroups {
			filter.ActiveGroups[g] = true
		}
	}
	return filter
}

// Color resolves a palette key to its renderable color, falling back to
// the key itself so raw hex values pass through.
func (c *Config) Color(key string) string {
	if hex, ok := c.Palette[key]; ok {
		return hex
	}
	return key
}
