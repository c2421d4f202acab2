package am

import (
	"strings"

	"github.com/teranos/parkour/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Empty database path falls back to DefaultDatabasePath

	if c.Scan.RowsPerSecond < 0 {
		return errors.Newf("scan.rows_per_second must be >= 0, got %g", c.Scan.RowsPerSecond)
	}
	if c.Scan.Burst < 0 {
		return errors.Newf("scan.burst must be >= 0, got %d", c.Scan.Burst)
	}

	for _, name := range c.World.Names {
		if strings.TrimSpace(name) == "" {
			return errors.New("world.names cannot contain an empty name")
		}
		if strings.ContainsAny(name, ",()") {
			return errors.WithHint(
				errors.Newf("world name %q contains a location delimiter", name),
				"world names appear inside (x,y,z,world) text and cannot contain ',', '(' or ')'")
		}
	}

	rewards, err := c.Leaderboard.RankRewards()
	if err != nil {
		return err
	}
	for rank, amount := range rewards {
		if amount < 0 {
			return errors.Newf("leaderboard.rewards rank %d must be >= 0, got %g", rank, amount)
		}
	}
	if c.Leaderboard.Top < 0 {
		return errors.Newf("leaderboard.top must be >= 0, got %d", c.Leaderboard.Top)
	}

	if strings.ContainsAny(c.Placeholder.Identifier, "% ") {
		return errors.Newf("placeholder.identifier %q cannot contain '%%' or spaces", c.Placeholder.Identifier)
	}

	return nil
}
