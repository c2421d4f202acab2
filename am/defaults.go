package am

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/parkour/errors"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)

	v.SetDefault("world.names", []string{DefaultWorld})
	v.SetDefault("world.default", DefaultWorld)

	v.SetDefault("scan.rows_per_second", 0) // unthrottled
	v.SetDefault("scan.burst", 0)

	v.SetDefault("leaderboard.top", DefaultLeaderboardTop)

	v.SetDefault("placeholder.identifier", DefaultIdentifier)
	v.SetDefault("placeholder.not_available", DefaultNotAvailable)
}

// BindEnvVars binds settings that are commonly overridden per invocation
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("database.path", EnvPrefix+"_DATABASE_PATH")
	v.BindEnv("world.default", EnvPrefix+"_WORLD_DEFAULT")
}

// GetDatabasePath returns the configured database path
func (c *Config) GetDatabasePath() string {
	if c.Database.Path == "" {
		return DefaultDatabasePath
	}
	return c.Database.Path
}

// WorldNames returns the configured worlds, always including the default.
func (c *Config) WorldNames() []string {
	names := slices.Clone(c.World.Names)
	def := c.DefaultWorld()
	if !slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, def) }) {
		names = append(names, def)
	}
	return names
}

// DefaultWorld returns world.default, falling back to "world".
func (c *Config) DefaultWorld() string {
	if c.World.Default == "" {
		return DefaultWorld
	}
	return c.World.Default
}

// GetIdentifier returns the placeholder identifier
func (c *Config) GetIdentifier() string {
	if c.Placeholder.Identifier == "" {
		return DefaultIdentifier
	}
	return c.Placeholder.Identifier
}

// GetNotAvailable returns the text shown for empty ranks
func (c *Config) GetNotAvailable() string {
	if c.Placeholder.NotAvailable == "" {
		return DefaultNotAvailable
	}
	return c.Placeholder.NotAvailable
}

// GetLeaderboardTop returns the default `board top` row count
func (c *Config) GetLeaderboardTop() int {
	if c.Leaderboard.Top <= 0 {
		return DefaultLeaderboardTop
	}
	return c.Leaderboard.Top
}

// RankRewards parses leaderboard.rewards into rank -> amount.
func (c LeaderboardConfig) RankRewards() (map[int]float64, error) {
	out := make(map[int]float64, len(c.Rewards))
	for key, amount := range c.Rewards {
		rank, err := strconv.Atoi(key)
		if err != nil || rank < 1 {
			return nil, errors.WithHint(
				errors.NewInvalidRequestError("leaderboard.rewards key %q is not a rank", key),
				"use [leaderboard.rewards] with keys like 1 = 100.0")
		}
		out[rank] = amount
	}
	return out, nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Database: %s, World: %s, Scan: {RowsPerSecond: %g}, Rewards: %d}",
		c.GetDatabasePath(), c.DefaultWorld(), c.Scan.RowsPerSecond, len(c.Leaderboard.Rewards))
}
