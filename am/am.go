// Package am loads parkour's configuration.
//
// Settings merge from /etc/parkour/am.toml, ~/.parkour/am.toml, the nearest
// am.toml above the working directory, and PARKOUR_* environment variables,
// in increasing precedence.
package am

// Config represents the parkour configuration
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	World       WorldConfig       `mapstructure:"world"`
	Scan        ScanConfig        `mapstructure:"scan"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Placeholder PlaceholderConfig `mapstructure:"placeholder"`
}

// DatabaseConfig configures the SQLite score database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// WorldConfig names the worlds locations may refer to
type WorldConfig struct {
	Names   []string `mapstructure:"names"`
	Default string   `mapstructure:"default"` // used when a location names an unknown world
}

// ScanConfig throttles block scans
type ScanConfig struct {
	RowsPerSecond float64 `mapstructure:"rows_per_second"` // 0 = unthrottled
	Burst         int     `mapstructure:"burst"`           // 0 = derived from rows_per_second
}

// LeaderboardConfig configures rank rewards
type LeaderboardConfig struct {
	// Rewards maps a rank ("1", "2", ...) to the amount paid by `board payout`.
	// TOML keys are strings, so ranks are parsed by RankRewards.
	Rewards map[string]float64 `mapstructure:"rewards"`
	Top     int                `mapstructure:"top"` // default row count for `board top`
}

// PlaceholderConfig configures template expansion
type PlaceholderConfig struct {
	Identifier   string `mapstructure:"identifier"`    // %<identifier>_<token>%
	NotAvailable string `mapstructure:"not_available"` // text for empty ranks
}

// Defaults shared by SetDefaults and the getters
const (
	DefaultDatabasePath   = "parkour.db"
	DefaultWorld          = "world"
	DefaultIdentifier     = "parkour"
	DefaultNotAvailable   = "N/A"
	DefaultLeaderboardTop = 10
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
