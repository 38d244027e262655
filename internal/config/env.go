package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const configPathEnvVar = "ANICOMPARE_CONFIG_PATH"

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string) error
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  configPathEnvVar,
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) error { return nil },
	},
	{
		name:  "ANICOMPARE_CONFIG_ANILIST_ENDPOINT",
		desc:  "Sets the AniList GraphQL endpoint.  Default: https://graphql.anilist.co",
		apply: func(c *Config, s string) error { c.AniList.Endpoint = s; return nil },
	},
	{
		name:  "ANICOMPARE_CONFIG_ANILIST_TIMEOUT",
		desc:  "Sets the per-request timeout for AniList calls, as a Go duration.  Default: 15s",
		apply: durationVar(func(c *Config) *time.Duration { return &c.AniList.Timeout }),
	},
	{
		name:  "ANICOMPARE_CONFIG_ANILIST_MAX_RETRIES",
		desc:  "Sets how many times a rate limited or failed AniList call is retried.  Default: 3",
		apply: intVar(func(c *Config) *int { return &c.AniList.MaxRetries }),
	},
	{
		name:  "ANICOMPARE_CONFIG_CACHE_TTL",
		desc:  "Sets how long a fetched collection is reused, as a Go duration.  Default: 1h",
		apply: durationVar(func(c *Config) *time.Duration { return &c.Cache.TTL }),
	},
	{
		name:  "ANICOMPARE_CONFIG_SERVER_ADDR",
		desc:  "Sets the listen address of the HTTP API.  Default: :8080",
		apply: func(c *Config, s string) error { c.Server.Addr = s; return nil },
	},
	{
		name:  "ANICOMPARE_CONFIG_UI_TITLE_WIDTH",
		desc:  "Sets the width of the title column in the list table.  Default: 40",
		apply: intVar(func(c *Config) *int { return &c.UI.TitleWidth }),
	},
	{
		name:  "ANICOMPARE_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: trace, debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) error { c.Logging.Level = s; return nil },
	},
	{
		name:  "ANICOMPARE_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) error { c.Logging.FilePath = s; return nil },
	},
}

func durationVar(field func(*Config) *time.Duration) func(*Config, string) error {
	return func(c *Config, s string) error {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*field(c) = d
		return nil
	}
}

func intVar(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func applyEnvVarOverrides(c *Config) error {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			if err := envVar.apply(c, value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar.name, err)
			}
		}
	}
	return nil
}
