package commands

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/parkour/am"
	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage parkour configuration",
	Long: `am - Manage parkour configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (PARKOUR_* prefix)
3. Project config (nearest ./am.toml, searching up directories)
4. User config (~/.parkour/am.toml)
5. System config (/etc/parkour/am.toml)
6. Default values

Examples:
  parkour am show                         # Show current configuration
  parkour am show --format json           # Show configuration as JSON
  parkour am get world.default            # Get one value
  parkour am set leaderboard.rewards.1 250
  parkour am set world.names world,world_nether
  parkour am validate                     # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a configuration value using dot notation (e.g. database.path, scan.rows_per_second)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a configuration value",
	Long: `Write a value into the user config file (~/.parkour/am.toml, or --file).

The previous file is kept as am.toml.bak.1 .. .bak.3.`,
	Args: cobra.ExactArgs(2),
	RunE: runAmSet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Args:  cobra.NoArgs,
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where each setting is loaded from",
	Args:  cobra.NoArgs,
	RunE:  runAmWhere,
}

var (
	configFormat string
	configFile   string
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amSetCmd.Flags().StringVar(&configFile, "file", "", "Config file to write (default: ~/.parkour/am.toml)")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	if _, err := am.Load(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	format := display.Format(configFormat)
	if display.ShouldOutputJSON(cmd) {
		format = display.FormatJSON
	}
	return display.Encode(cmd.OutOrStdout(), format, "parkour configuration", am.GetViper().AllSettings())
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, err := am.Load(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if !am.GetViper().IsSet(key) {
		return errors.WithHint(
			errors.NewNotFoundError("configuration key %q not found", key),
			"run 'parkour am show' to list keys")
	}

	value := am.Get(key)
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]interface{}{"key": key, "value": value})
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

func runAmSet(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = am.UserConfigPath()
	}
	if path == "" {
		return errors.WithHint(
			errors.NewInvalidRequestError("no home directory for the user config"),
			"pass --file to choose a config file")
	}

	if err := am.SetValue(path, args[0], args[1]); err != nil {
		return err
	}
	// reject the write if it left the merged config invalid
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to reload config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithHintf(err, "the previous file is at %s.bak.1", path)
	}

	if !display.ShouldOutputJSON(cmd) {
		pterm.Success.Printfln("%s = %s (%s)", args[0], args[1], path)
	}
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	intro, err := am.GetConfigIntrospection()
	if err != nil {
		return errors.Wrap(err, "failed to get config introspection")
	}
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), intro)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintln(out, "  2. [SYSTEM]   /etc/parkour/am.toml")
	fmt.Fprintln(out, "  3. [USER]     ~/.parkour/am.toml")
	fmt.Fprintln(out, "  4. [PROJECT]  ./am.toml (searches up directories)")
	fmt.Fprintln(out, "  5. [ENV]      PARKOUR_* environment variables")
	fmt.Fprintln(out)

	settings := append([]am.SettingInfo(nil), intro.Settings...)
	rank := map[am.ConfigSource]int{
		am.SourceDefault:     0,
		am.SourceSystem:      1,
		am.SourceUser:        2,
		am.SourceProject:     3,
		am.SourceEnvironment: 4,
	}
	sort.SliceStable(settings, func(i, j int) bool {
		return rank[settings[i].Source] < rank[settings[j].Source]
	})

	rows := make([][]string, len(settings))
	for i, s := range settings {
		value := fmt.Sprintf("%v", s.Value)
		if len(value) > 50 {
			value = value[:47] + "..."
		}
		rows[i] = []string{s.Key, value, string(s.Source), s.SourcePath}
	}
	return display.Table(out, []string{"Key", "Value", "Source", "From"}, rows)
}
