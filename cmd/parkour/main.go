package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/parkour/cmd/parkour/commands"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
)

var rootCmd = &cobra.Command{
	Use:   "parkour",
	Short: "parkour - region analysis, locations and leaderboards",
	Long: `parkour - region analysis, locations and leaderboards.

Works with cuboid regions of a block world, the (x,y,z,world) location
format, and a ranked highscore table with placeholder resolution.

Available commands:
  region  - Volume, covering chunks and block scans of a region
  loc     - Encode and decode location text
  board   - Inspect and edit the leaderboard
  resolve - Resolve one placeholder token
  expand  - Expand %parkour_<token>% placeholders in text
  am      - Manage configuration
  version - Show build information

Examples:
  parkour region volume "(0,0,0,world)" "(15,3,15,world)"
  parkour loc path "(1,2,3,world)->(4,5,6,world)"
  parkour board top -n 5
  parkour resolve score_rank_1`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithVerbosity(false, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		commands.TagContext(cmd)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON instead of tables")
	rootCmd.PersistentFlags().String("db", "", "Score database path (default: database.path from config)")

	rootCmd.AddCommand(commands.RegionCmd)
	rootCmd.AddCommand(commands.LocCmd)
	rootCmd.AddCommand(commands.BoardCmd)
	rootCmd.AddCommand(commands.ResolveCmd)
	rootCmd.AddCommand(commands.ExpandCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
