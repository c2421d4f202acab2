package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show parkour version information",
	Long: `Display version, build time, commit hash, and platform information.

With --require, exit non-zero unless the build satisfies a semantic-version
constraint. Dev builds satisfy every constraint.

Examples:
  parkour version
  parkour version --require ">= 1.2, < 2"`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var versionRequire string

func init() {
	VersionCmd.Flags().StringVar(&versionRequire, "require", "", "Semantic-version constraint the build must satisfy")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	if versionRequire != "" {
		ok, err := info.Satisfies(versionRequire)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Newf("version %s does not satisfy %q", info.Version, versionRequire)
		}
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), info)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, info.String())
	fmt.Fprintf(out, "Platform: %s\n", info.Platform)
	fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
	return nil
}
