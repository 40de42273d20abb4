// Package config holds the bot's runtime configuration, read from a
// YAML file and the environment.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Pons   PonsConfig   `yaml:"pons"`
	Reddit RedditConfig `yaml:"reddit"`
	Bot    BotConfig    `yaml:"bot"`
	Log    LogConfig    `yaml:"log"`
}

// PonsConfig holds the dictionary API settings. Only the key is a
// secret; the endpoints are overridable for tests.
type PonsConfig struct {
	Key        string `yaml:"key"         env:"PONS_KEY"`
	APIURL     string `yaml:"api_url"     env:"PONS_API_URL"     env-default:"https://api.pons.com/v1/dictionary"`
	PageURL    string `yaml:"page_url"    env:"PONS_PAGE_URL"    env-default:"https://en.pons.com/translate"`
	Dictionary string `yaml:"dictionary"  env:"PONS_DICTIONARY"  env-default:"deen"`
	SourceLang string `yaml:"source_lang" env:"PONS_SOURCE_LANG" env-default:"de"`
	TargetLang string `yaml:"target_lang" env:"PONS_TARGET_LANG" env-default:"en"`
}

// RedditConfig holds the script-app credentials. All four credential
// fields are needed to scan; lookup works without them.
type RedditConfig struct {
	ClientID     string `yaml:"client_id"     env:"REDDIT_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"REDDIT_CLIENT_SECRET"`
	Username     string `yaml:"username"      env:"REDDIT_USERNAME"`
	Password     string `yaml:"password"      env:"REDDIT_PASSWORD"`
	UserAgent    string `yaml:"user_agent"    env:"REDDIT_USER_AGENT"`
	AuthURL      string `yaml:"auth_url"      env:"REDDIT_AUTH_URL" env-default:"https://www.reddit.com/api/v1/access_token"`
	APIURL       string `yaml:"api_url"       env:"REDDIT_API_URL"  env-default:"https://oauth.reddit.com"`
}

// BotConfig holds scan behavior.
type BotConfig struct {
	Subreddit string        `yaml:"subreddit"  env:"BOT_SUBREDDIT"  env-default:"DeutschesBot"`
	PostLimit int           `yaml:"post_limit" env:"BOT_POST_LIMIT" env-default:"5"`
	Sleep     time.Duration `yaml:"sleep"      env:"BOT_SLEEP"      env-default:"90s"`
	DBPath    string        `yaml:"db_path"    env:"BOT_DB_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Validate checks what every command needs. Command-specific needs
// (Reddit credentials) are checked by the commands that use them.
func (c *Config) Validate() error {
	if c.Pons.Key == "" {
		return errors.New("pons.key is not set (PONS_KEY)")
	}
	return nil
}

// Validate reports the credential fields still missing for talking to
// the forum.
func (c RedditConfig) Validate() error {
	missing := []string{}
	if c.ClientID == "" {
		missing = append(missing, "reddit.client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "reddit.client_secret")
	}
	if c.Username == "" {
		missing = append(missing, "reddit.username")
	}
	if c.Password == "" {
		missing = append(missing, "reddit.password")
	}
	if len(missing) > 0 {
		return errors.New("missing reddit credentials: " + strings.Join(missing, ", "))
	}
	return nil
}
