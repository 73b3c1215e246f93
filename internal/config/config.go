// Package config provides configuration management for skycast.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/skycast/internal/domain"
)

// AppDirName is the directory under $HOME holding config, cache and logs.
const AppDirName = ".skycast"

// Config holds all configuration for skycast.
type Config struct {
	Banner        BannerConfig       `mapstructure:"banner"`
	Contacts      []string           `mapstructure:"contacts"`
	Starfield     StarfieldConfig    `mapstructure:"starfield"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// BannerConfig controls the confirmation banner.
type BannerConfig struct {
	Duration Duration `mapstructure:"duration"`
}

// StarfieldConfig controls the decorative background.
type StarfieldConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Density is the number of stars per 100 cells.
	Density int `mapstructure:"density"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorSkyTop    string `mapstructure:"color_sky_top"`
	ColorSkyBottom string `mapstructure:"color_sky_bottom"`
	ColorText      string `mapstructure:"color_text"`
	ColorMuted     string `mapstructure:"color_muted"`
	ColorAccent    string `mapstructure:"color_accent"`
	ColorIcon      string `mapstructure:"color_icon"`
	ColorCard      string `mapstructure:"color_card"`
	ColorButton    string `mapstructure:"color_button"`
	ColorStar      string `mapstructure:"color_star"`
	ColorBanner    string `mapstructure:"color_banner"`
	IconLock       string `mapstructure:"icon_lock"`
	IconPin        string `mapstructure:"icon_pin"`
	IconStar       string `mapstructure:"icon_star"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorSkyTop:    "#000033",
		ColorSkyBottom: "#000066",
		ColorText:      "#FFFFFF",
		ColorMuted:     "#8E8E93",
		ColorAccent:    "#0A84FF",
		ColorIcon:      "#FFD60A",
		ColorCard:      "#2C2C54",
		ColorButton:    "#3A3A3C",
		ColorStar:      "#9999AA",
		ColorBanner:    "#111111",
		IconLock:       "🔒",
		IconPin:        "📍",
		IconStar:       "·",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultBannerDuration is how long a confirmation stays on screen.
const DefaultBannerDuration = 2 * time.Second

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	contacts := make([]string, len(domain.DefaultContacts))
	copy(contacts, domain.DefaultContacts)

	return &Config{
		Banner:   BannerConfig{Duration: Duration(DefaultBannerDuration)},
		Contacts: contacts,
		Starfield: StarfieldConfig{
			Enabled: true,
			Density: 3,
		},
		Notifications: NotificationConfig{
			Enabled: false,
			Sound:   false,
		},
		Storage: StorageConfig{
			DataDir: "~/" + AppDirName,
		},
		Theme: DefaultThemeConfig(),
	}
}

// BannerDuration returns the banner display time, falling back to the
// default for zero or negative values.
func (c *Config) BannerDuration() time.Duration {
	d := time.Duration(c.Banner.Duration)
	if d <= 0 {
		return DefaultBannerDuration
	}
	return d
}

// ContactList returns the configured contacts, or the defaults when none are set.
func (c *Config) ContactList() []string {
	if len(c.Contacts) == 0 {
		return domain.DefaultContacts
	}
	return c.Contacts
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from an explicit path, creating the
// file with defaults if it does not exist.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// data_dir stays as written so Save keeps "~/" portable; GetDBPath
	// and GetLogDir expand it on use.
	if _, err := expandDataDir(cfg.Storage.DataDir); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	v.Set("banner.duration", cfg.Banner.Duration.String())
	v.Set("contacts", cfg.Contacts)
	v.Set("starfield.enabled", cfg.Starfield.Enabled)
	v.Set("starfield.density", cfg.Starfield.Density)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.debug", cfg.Log.Debug)
	v.Set("theme.color_sky_top", cfg.Theme.ColorSkyTop)
	v.Set("theme.color_sky_bottom", cfg.Theme.ColorSkyBottom)
	v.Set("theme.color_text", cfg.Theme.ColorText)
	v.Set("theme.color_muted", cfg.Theme.ColorMuted)
	v.Set("theme.color_accent", cfg.Theme.ColorAccent)
	v.Set("theme.color_icon", cfg.Theme.ColorIcon)
	v.Set("theme.color_card", cfg.Theme.ColorCard)
	v.Set("theme.color_button", cfg.Theme.ColorButton)
	v.Set("theme.color_star", cfg.Theme.ColorStar)
	v.Set("theme.color_banner", cfg.Theme.ColorBanner)
	v.Set("theme.icon_lock", cfg.Theme.IconLock)
	v.Set("theme.icon_pin", cfg.Theme.IconPin)
	v.Set("theme.icon_star", cfg.Theme.IconStar)

	return v.WriteConfigAs(configPath)
}

// Set updates a single user-settable key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "banner.duration":
		var d Duration
		if err := d.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		if d <= 0 {
			return fmt.Errorf("banner.duration must be positive, got %s", value)
		}
		c.Banner.Duration = d
	case "notifications.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", value, err)
		}
		c.Notifications.Enabled = b
	case "notifications.sound":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", value, err)
		}
		c.Notifications.Sound = b
	case "log.debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", value, err)
		}
		c.Log.Debug = b
	case "starfield.density":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid density %q", value)
		}
		c.Starfield.Density = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, AppDirName, "config.toml"), nil
}

// GetDBPath returns the path to the forecast cache database.
func GetDBPath(cfg *Config) string {
	return filepath.Join(dataDir(cfg), "forecast.db")
}

// GetLogDir returns the directory holding log files.
func GetLogDir(cfg *Config) string {
	return filepath.Join(dataDir(cfg), "logs")
}

func dataDir(cfg *Config) string {
	dir, err := expandDataDir(cfg.Storage.DataDir)
	if err != nil {
		return cfg.Storage.DataDir
	}
	return dir
}

// expandDataDir resolves a leading "~/" against the home directory. An
// empty value means the default directory.
func expandDataDir(dir string) (string, error) {
	if dir != "" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if dir == "" {
		return filepath.Join(homeDir, AppDirName), nil
	}
	return filepath.Join(homeDir, strings.TrimPrefix(dir, "~/")), nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("banner.duration", defaults.Banner.Duration.String())
	v.SetDefault("contacts", defaults.Contacts)
	v.SetDefault("starfield.enabled", defaults.Starfield.Enabled)
	v.SetDefault("starfield.density", defaults.Starfield.Density)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("log.debug", false)

	theme := defaults.Theme
	v.SetDefault("theme.color_sky_top", theme.ColorSkyTop)
	v.SetDefault("theme.color_sky_bottom", theme.ColorSkyBottom)
	v.SetDefault("theme.color_text", theme.ColorText)
	v.SetDefault("theme.color_muted", theme.ColorMuted)
	v.SetDefault("theme.color_accent", theme.ColorAccent)
	v.SetDefault("theme.color_icon", theme.ColorIcon)
	v.SetDefault("theme.color_card", theme.ColorCard)
	v.SetDefault("theme.color_button", theme.ColorButton)
	v.SetDefault("theme.color_star", theme.ColorStar)
	v.SetDefault("theme.color_banner", theme.ColorBanner)
	v.SetDefault("theme.icon_lock", theme.IconLock)
	v.SetDefault("theme.icon_pin", theme.IconPin)
	v.SetDefault("theme.icon_star", theme.IconStar)
}
