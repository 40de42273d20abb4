package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
pons:
  key: file-key
bot:
  subreddit: wortdestages
  sleep: 10s
log:
  level: debug
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Pons.Key)
	assert.Equal(t, "wortdestages", cfg.Bot.Subreddit)
	assert.Equal(t, 10*time.Second, cfg.Bot.Sleep)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Defaults fill everything the file leaves out.
	assert.Equal(t, "https://api.pons.com/v1/dictionary", cfg.Pons.APIURL)
	assert.Equal(t, "deen", cfg.Pons.Dictionary)
	assert.Equal(t, 5, cfg.Bot.PostLimit)
	assert.Equal(t, "https://oauth.reddit.com", cfg.Reddit.APIURL)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
pons:
  key: file-key
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PONS_KEY", "env-key")
	t.Setenv("BOT_SLEEP", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Pons.Key)
	assert.Equal(t, 5*time.Second, cfg.Bot.Sleep)
}

func TestLoadWithoutFileUsesEnvAndDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PONS_KEY", "env-only-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-only-key", cfg.Pons.Key)
	assert.Equal(t, "DeutschesBot", cfg.Bot.Subreddit)
	assert.Equal(t, 90*time.Second, cfg.Bot.Sleep)
}

func TestExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pons.key")

	cfg.Pons.Key = "k"
	assert.NoError(t, cfg.Validate())
}

func TestRedditValidateListsMissingFields(t *testing.T) {
	rc := RedditConfig{ClientID: "id", Username: "dbot"}

	err := rc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reddit.client_secret")
	assert.Contains(t, err.Error(), "reddit.password")
	assert.NotContains(t, err.Error(), "reddit.client_id")

	rc.ClientSecret = "s"
	rc.Password = "p"
	assert.NoError(t, rc.Validate())
}
