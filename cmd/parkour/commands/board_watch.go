package commands

import (
	"os"
	"sync/atomic"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/parkour/am"
	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/leaderboard"
	"github.com/teranos/parkour/logger"
)

var boardWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Show the top records of a highscore file, refreshing on change",
	Long: `Load a JSON or YAML highscore file and print its top records, then
reprint whenever the file changes. Runs until interrupted.

Without -n the row count follows leaderboard.top in the user config file,
including edits made while watching.`,
	Args: cobra.ExactArgs(1),
	RunE: runBoardWatch,
}

func runBoardWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var rows atomic.Int64
	rows.Store(int64(cfg.GetLeaderboardTop()))
	if boardTopN > 0 {
		rows.Store(int64(boardTopN))
	} else if stop := followTop(&rows); stop != nil {
		defer stop()
	}

	board := leaderboard.NewBoard()
	asJSON := display.ShouldOutputJSON(cmd)
	out := cmd.OutOrStdout()
	log := logger.LoggerFromContext(cmd.Context())

	fw, err := leaderboard.NewFileWatcher(args[0], func(recs []leaderboard.Record) {
		board.Load(recs)
		top := topRecords(board, int(rows.Load()))
		if asJSON {
			if err := display.OutputJSON(out, top); err != nil {
				log.Warnw("Failed to write leaderboard", logger.FieldError, err)
			}
			return
		}
		pterm.DefaultSection.Printfln("%s (%d records)", args[0], board.Len())
		if err := display.Table(out, recordHeaders, recordRows(top)); err != nil {
			log.Warnw("Failed to render leaderboard", logger.FieldError, err)
		}
	}, logger.ComponentLogger("watch"))
	if err != nil {
		return err
	}
	return fw.Run(cmd.Context())
}

// followTop keeps rows in step with leaderboard.top in the user config.
// It returns nil when there is no user config file to watch.
func followTop(rows *atomic.Int64) func() {
	path := am.UserConfigPath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	cw, err := am.NewConfigWatcher(path)
	if err != nil {
		logger.Warnw("Config watch unavailable", logger.FieldPath, path, logger.FieldError, err)
		return nil
	}
	cw.OnReload(func(cfg *am.Config) error {
		rows.Store(int64(cfg.GetLeaderboardTop()))
		return nil
	})
	am.SetGlobalWatcher(cw)
	cw.Start()
	return func() {
		am.SetGlobalWatcher(nil)
		cw.Stop()
	}
}
