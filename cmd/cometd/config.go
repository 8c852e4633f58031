package main

import (
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-errors/errors"
)

// Config drives the demo streaming client.
type Config struct {
	// ServerURL is the Bayeux endpoint to connect to.
	ServerURL string

	// AccessToken is sent as the OAuth Authorization header value.
	AccessToken string

	// Channels are the subscriptions to stream from.
	Channels []string

	// MaxRetries is the advice-following retry budget per operation.
	MaxRetries int
}

func defaultConfig() Config {
	return Config{
		MaxRetries: 10,
	}
}

type fileConfig struct {
	ServerURL   string   `toml:"server_url"`
	AccessToken string   `toml:"access_token"`
	Channels    []string `toml:"channels"`
	MaxRetries  int      `toml:"max_retries"`
}

// loadConfig reads the TOML file at path, applying defaults for anything the
// file leaves out.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Errorf("failed to load config: %w", err)
	}

	if meta.IsDefined("server_url") {
		cfg.ServerURL = strings.TrimSpace(raw.ServerURL)
	}

	if meta.IsDefined("access_token") {
		cfg.AccessToken = strings.TrimSpace(raw.AccessToken)
	}

	if meta.IsDefined("channels") {
		cfg.Channels = normalizeChannels(raw.Channels)
	}

	if meta.IsDefined("max_retries") {
		cfg.MaxRetries = raw.MaxRetries
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration is complete enough to stream.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.ServerURL); err != nil {
		return errors.Errorf("failed to parse server url: %w", err)
	}

	if len(c.Channels) == 0 {
		return errors.New("at least one channel is required")
	}

	if c.MaxRetries < 0 {
		return errors.Errorf("invalid max retries %d", c.MaxRetries)
	}

	return nil
}

func normalizeChannels(in []string) []string {
	out := make([]string, 0, len(in))

	for _, channel := range in {
		if v := strings.TrimSpace(channel); v != "" {
			out = append(out, v)
		}
	}

	return out
}
