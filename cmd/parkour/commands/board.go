package commands

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/leaderboard"
	"github.com/teranos/parkour/logger"
	"github.com/teranos/parkour/placeholder"
)

// BoardCmd groups leaderboard commands
var BoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Inspect and edit the leaderboard",
	Long: `Inspect and edit the leaderboard stored in the score database.

Owners are identified by UUID. Equal scores rank in the order owners first
submitted.

Examples:
  parkour board top -n 5
  parkour board submit 4f0c...e1 Steve 120 02:31
  parkour board import highscores.json
  parkour board payout`,
}

var boardTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the best records",
	Args:  cobra.NoArgs,
	RunE:  runBoardTop,
}

var boardRankCmd = &cobra.Command{
	Use:   "rank <owner>",
	Short: "Show one owner's rank and record",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardRank,
}

var boardSubmitCmd = &cobra.Command{
	Use:   "submit <owner> <name> <score> <time>",
	Short: "Submit a run; stored only if it beats the owner's record",
	Args:  cobra.ExactArgs(4),
	RunE:  runBoardSubmit,
}

var boardImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON or YAML highscore file",
	Long: `Import a highscore file of the form
  {"<uuid>": {"name": "...", "score": 10, "time": "...", "difficulty": "..."}}

Records overwrite existing ones for the same owner.`,
	Args: cobra.ExactArgs(1),
	RunE: runBoardImport,
}

var boardRemoveCmd = &cobra.Command{
	Use:   "remove <owner>",
	Short: "Delete an owner's record",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardRemove,
}

var boardPayoutCmd = &cobra.Command{
	Use:   "payout",
	Short: "Pay leaderboard.rewards to the current rank holders",
	Args:  cobra.NoArgs,
	RunE:  runBoardPayout,
}

var (
	boardTopN       int
	boardDifficulty string
	boardForce      bool
)

func init() {
	boardTopCmd.Flags().IntVarP(&boardTopN, "count", "n", 0, "Rows to show (default: leaderboard.top)")
	boardSubmitCmd.Flags().StringVar(&boardDifficulty, "difficulty", "", "Difficulty recorded with the run")
	boardSubmitCmd.Flags().BoolVar(&boardForce, "force", false, "Store even if it does not beat the current record")

	BoardCmd.AddCommand(boardTopCmd)
	BoardCmd.AddCommand(boardRankCmd)
	BoardCmd.AddCommand(boardSubmitCmd)
	BoardCmd.AddCommand(boardImportCmd)
	BoardCmd.AddCommand(boardRemoveCmd)
	BoardCmd.AddCommand(boardPayoutCmd)
	BoardCmd.AddCommand(boardWatchCmd)
}

func parseOwner(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "owner %q is not a UUID", s),
			"owners are identified by UUID, e.g. 069a79f4-44e9-4726-a5be-fca90e38aaf5")
	}
	return id, nil
}

type rankedRecord struct {
	Rank int `json:"rank"`
	leaderboard.Record
}

func recordRows(recs []rankedRecord) [][]string {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			strconv.Itoa(r.Rank),
			r.Name,
			placeholder.FormatInt(r.Score),
			r.Time,
			r.Difficulty,
			r.OwnerID.String(),
		}
	}
	return rows
}

var recordHeaders = []string{"Rank", "Name", "Score", "Time", "Difficulty", "Owner"}

// topSource is the read side shared by *leaderboard.Board and
// *leaderboard.Persistent.
type topSource interface {
	Top(n int) []leaderboard.Record
}

func topRecords(b topSource, n int) []rankedRecord {
	top := b.Top(n)
	out := make([]rankedRecord, len(top))
	for i, r := range top {
		out[i] = rankedRecord{Rank: i + 1, Record: r}
	}
	return out
}

func runBoardTop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	board, database, err := openBoard(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	n := boardTopN
	if n <= 0 {
		n = cfg.GetLeaderboardTop()
	}
	recs := topRecords(board, n)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), recs)
	}
	if len(recs) == 0 {
		pterm.Info.Println("The leaderboard is empty")
		return nil
	}
	return display.Table(cmd.OutOrStdout(), recordHeaders, recordRows(recs))
}

func runBoardRank(cmd *cobra.Command, args []string) error {
	owner, err := parseOwner(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	board, database, err := openBoard(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	// one snapshot for both lookups
	standings := board.Standings()
	rank, ok := standings.RankOf(owner)
	if !ok {
		return errors.NewNotFoundError("no record for %s", owner)
	}
	e, _ := standings.EntryAt(rank)
	rec := rankedRecord{Rank: rank, Record: e.Value}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), rec)
	}
	return display.Table(cmd.OutOrStdout(), recordHeaders, recordRows([]rankedRecord{rec}))
}

func runBoardSubmit(cmd *cobra.Command, args []string) error {
	owner, err := parseOwner(args[0])
	if err != nil {
		return err
	}
	score, err := strconv.Atoi(args[2])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidRequest, "score %q is not an integer", args[2])
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	board, database, err := openBoard(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	rec := leaderboard.Record{OwnerID: owner, Name: args[1], Score: score, Time: args[3], Difficulty: boardDifficulty}
	stored := true
	if boardForce {
		err = board.Put(cmd.Context(), rec)
	} else {
		stored, err = board.Submit(cmd.Context(), rec)
	}
	if err != nil {
		return err
	}

	rank, _ := board.RankOf(owner)
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]interface{}{"stored": stored, "rank": rank})
	}
	if stored {
		pterm.Success.Printfln("%s is now rank %d with %s", rec.Name, rank, placeholder.FormatInt(score))
	} else {
		pterm.Info.Printfln("Not stored: %s already has %s", rec.Name, placeholder.FormatInt(board.HighScore(owner)))
	}
	return nil
}

func runBoardImport(cmd *cobra.Command, args []string) error {
	recs, err := leaderboard.ImportFile(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := openDatabase(cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := leaderboard.NewSQLStore(database).SaveAll(cmd.Context(), recs); err != nil {
		return err
	}
	logger.LoggerFromContext(cmd.Context()).Infow("Highscores imported", logger.FieldFile, args[0], logger.FieldCount, len(recs))

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]int{"imported": len(recs)})
	}
	pterm.Success.Printfln("Imported %d records from %s", len(recs), args[0])
	return nil
}

func runBoardRemove(cmd *cobra.Command, args []string) error {
	owner, err := parseOwner(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	board, database, err := openBoard(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := board.Remove(cmd.Context(), owner); err != nil {
		return err
	}
	if !display.ShouldOutputJSON(cmd) {
		pterm.Success.Printfln("Removed record for %s", owner)
	}
	return nil
}

func runBoardPayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rewards, err := cfg.Leaderboard.RankRewards()
	if err != nil {
		return err
	}
	if len(rewards) == 0 {
		return errors.WithHint(
			errors.NewInvalidRequestError("no leaderboard.rewards configured"),
			"parkour am set leaderboard.rewards.1 100")
	}
	board, database, err := openBoard(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	rewarder := leaderboard.NewRewarder(leaderboard.NewSQLLedger(database), rewards, logger.ComponentLogger("rewards"))
	payments := rewarder.Payout(cmd.Context(), board.Standings())

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), payments)
	}
	rows := make([][]string, len(payments))
	for i, p := range payments {
		status := "paid"
		if !p.Paid {
			status = "failed"
		}
		rows[i] = []string{strconv.Itoa(p.Rank), p.Name, strconv.FormatFloat(p.Amount, 'f', 2, 64), status}
	}
	return display.Table(cmd.OutOrStdout(), []string{"Rank", "Name", "Amount", "Status"}, rows)
}
