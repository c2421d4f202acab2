// Package version reports build information and checks it against
// semantic-version constraints.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/parkour/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash" yaml:"commit_hash"`
	BuildTime  string `json:"build_time" yaml:"build_time"`
	Version    string `json:"version" yaml:"version"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("parkour %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("parkour dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// Display is the text the "version" placeholder resolves to: the tagged
// version, or the short commit for dev builds.
func (i Info) Display() string {
	if i.Version != "dev" {
		return i.Version
	}
	return "dev-" + i.Short()
}

// Satisfies reports whether the build version meets constraint, e.g.
// ">= 1.2, < 2". Dev builds satisfy every constraint.
func (i Info) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "invalid version constraint %q: %v", constraint, err),
			"constraints look like \">= 1.2.0\" or \"^1.4\"")
	}
	if i.Version == "dev" {
		return true, nil
	}
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return false, errors.Wrapf(err, "invalid build version %s", i.Version)
	}
	return c.Check(v), nil
}
