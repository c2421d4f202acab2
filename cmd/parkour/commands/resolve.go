package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/parkour/am"
	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
	"github.com/teranos/parkour/placeholder"
	"github.com/teranos/parkour/version"
)

// ResolveCmd answers a single placeholder token
var ResolveCmd = &cobra.Command{
	Use:   "resolve <token>",
	Short: "Resolve one placeholder token",
	Long: `Resolve one placeholder token against the leaderboard and, for
session tokens, a session file.

Tokens are written without the identifier prefix, e.g. "leader" or
"score_rank_3". Exits with an error when the token has no value.

Examples:
  parkour resolve leader
  parkour resolve time_rank_2
  parkour resolve highscore --owner 069a79f4-44e9-4726-a5be-fca90e38aaf5
  parkour resolve blocklead --session run.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// ExpandCmd substitutes placeholders in text
var ExpandCmd = &cobra.Command{
	Use:   "expand [text]",
	Short: "Expand %parkour_<token>% placeholders in text",
	Long: `Expand every %<identifier>_<token>% occurrence in text. Reads stdin
when no text is given. Placeholders without a value are left as written.

Examples:
  parkour expand "Top: %parkour_leader% (%parkour_leader_score%)"
  echo "You are #%parkour_player_rank_1%" | parkour expand`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

var (
	resolveOwner   string
	resolveSession string
)

func init() {
	for _, c := range []*cobra.Command{ResolveCmd, ExpandCmd} {
		c.Flags().StringVar(&resolveOwner, "owner", "", "Viewer UUID for highscore")
		c.Flags().StringVar(&resolveSession, "session", "", "YAML or JSON file describing the viewer's current run")
	}
}

// loadSession reads a session file. JSON is valid YAML, so one decoder
// covers both.
func loadSession(path string) (placeholder.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read session file %s", path)
	}
	var s placeholder.SessionState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "session file %s: %v", path, err),
			"keys: score, time, blocklead, style, time_preference, scoreboard, difficulty")
	}
	return s, nil
}

func resolveContext() (placeholder.Context, error) {
	var pc placeholder.Context
	if resolveOwner != "" {
		id, err := parseOwner(resolveOwner)
		if err != nil {
			return pc, err
		}
		pc.Viewer = id
	}
	if resolveSession != "" {
		s, err := loadSession(resolveSession)
		if err != nil {
			return pc, err
		}
		pc.Session = s
	}
	return pc, nil
}

func newResolver(cfg *am.Config, source placeholder.StandingsSource) *placeholder.Resolver {
	return placeholder.NewResolver(source, placeholder.Options{
		Version:      version.Get().Display(),
		NotAvailable: cfg.GetNotAvailable(),
		Logger:       logger.ComponentLogger("placeholder"),
	})
}

func runResolve(cmd *cobra.Command, args []string) error {
	pc, err := resolveContext()
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

	value, ok, err := newResolver(cfg, board).Resolve(pc, args[0])
	if err != nil {
		return err
	}
	if display.ShouldOutputJSON(cmd) {
		out := map[string]interface{}{"token": args[0], "resolved": ok}
		if ok {
			out["value"] = value
		}
		return display.OutputJSON(cmd.OutOrStdout(), out)
	}
	if !ok {
		return errors.WithHint(
			errors.NewNotFoundError("token %q has no value", args[0]),
			"session tokens need --session; highscore needs --owner")
	}
	_, err = cmd.OutOrStdout().Write([]byte(value + "\n"))
	return err
}

func runExpand(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := readAll(cmd)
		if err != nil {
			return err
		}
		text = data
	}

	pc, err := resolveContext()
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

	expander := placeholder.NewExpander(newResolver(cfg, board), cfg.GetIdentifier())
	out, err := expander.Expand(pc, text)
	if err != nil {
		return err
	}
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]string{"text": out})
	}
	_, err = cmd.OutOrStdout().Write([]byte(out))
	if err == nil && len(args) == 1 {
		_, err = cmd.OutOrStdout().Write([]byte("\n"))
	}
	return err
}

func readAll(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}
	return string(data), nil
}
