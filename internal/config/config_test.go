package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2*time.Second, cfg.BannerDuration())
	assert.Equal(t, []string{"Mom", "Dad", "Sister", "Brother", "Friend"}, cfg.Contacts)
	assert.False(t, cfg.Notifications.Enabled, "notifications must be opt-in")
	assert.Equal(t, "#000033", cfg.Theme.ColorSkyTop)
}

func TestBannerDuration_FallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Banner.Duration = 0
	assert.Equal(t, DefaultBannerDuration, cfg.BannerDuration())
}

func TestContactList_Empty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contacts = nil
	assert.Len(t, cfg.ContactList(), 5)
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "config file should be created")

	assert.Equal(t, 2*time.Second, cfg.BannerDuration())
	assert.Equal(t, DefaultConfig().Contacts, cfg.Contacts)
	assert.Equal(t, "~/"+AppDirName, cfg.Storage.DataDir, "data dir should be kept as written")
}

func TestSaveTo_KeepsHomeRelativeDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Storage.DataDir = "~/weather"
	require.NoError(t, SaveTo(path, cfg))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Set("banner.duration", "4s"))
	require.NoError(t, SaveTo(path, loaded))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "~/weather")
	assert.NotContains(t, string(raw), home)

	reloaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "~/weather", reloaded.Storage.DataDir)
	assert.Equal(t, filepath.Join(home, "weather", "forecast.db"), GetDBPath(reloaded))
}

func TestSaveTo_RoundTripsEditedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	dataDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Banner.Duration = Duration(3500 * time.Millisecond)
	cfg.Contacts = []string{"Aunt", "Neighbor"}
	cfg.Notifications.Enabled = true
	cfg.Storage.DataDir = dataDir
	require.NoError(t, SaveTo(path, cfg))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 3500*time.Millisecond, loaded.BannerDuration())
	assert.Equal(t, []string{"Aunt", "Neighbor"}, loaded.Contacts)
	assert.True(t, loaded.Notifications.Enabled)
	assert.Equal(t, dataDir, loaded.Storage.DataDir)
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{"banner.duration", "5s", false, func(t *testing.T, c *Config) {
			assert.Equal(t, 5*time.Second, c.BannerDuration())
		}},
		{"banner.duration", "-1s", true, nil},
		{"banner.duration", "soon", true, nil},
		{"notifications.enabled", "true", false, func(t *testing.T, c *Config) {
			assert.True(t, c.Notifications.Enabled)
		}},
		{"log.debug", "maybe", true, nil},
		{"starfield.density", "0", false, func(t *testing.T, c *Config) {
			assert.Zero(t, c.Starfield.Density)
		}},
		{"unknown.key", "1", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, Duration(90*time.Second), d)

	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))

	assert.Error(t, d.UnmarshalText([]byte("later")))
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = "/tmp/sky"
	assert.Equal(t, "/tmp/sky/forecast.db", GetDBPath(cfg))
	assert.Equal(t, "/tmp/sky/logs", GetLogDir(cfg))
}

func TestPaths_ExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, AppDirName, "forecast.db"), GetDBPath(cfg))

	cfg.Storage.DataDir = "~/weather"
	assert.Equal(t, filepath.Join(home, "weather", "logs"), GetLogDir(cfg))
}
