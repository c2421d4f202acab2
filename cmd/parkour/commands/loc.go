package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/location"
	"github.com/teranos/parkour/world"
)

// LocCmd groups location codec commands
var LocCmd = &cobra.Command{
	Use:   "loc",
	Short: "Encode and decode location text",
	Long: `Encode and decode the (x,y,z,world) location format.

Unknown worlds decode to world.default with a warning (-v to see it).

Examples:
  parkour loc decode "(1.5,64,-3,world)"
  parkour loc encode -- 1.5 64 -3 world
  parkour loc encode --formatted -- 1.5 64 -3
  parkour loc path "(0,64,0,world)->(5,64,5,world)"`,
}

var locDecodeCmd = &cobra.Command{
	Use:   "decode <location>",
	Short: "Decode one location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocDecode,
}

var locEncodeCmd = &cobra.Command{
	Use:   "encode <x> <y> <z> [world]",
	Short: "Encode coordinates as location text",
	Long:  "Encode coordinates as location text. Put \"--\" before the coordinates when any is negative.",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  runLocEncode,
}

var locPathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Decode a multi-location path",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocPath,
}

var (
	locFormatted bool
	locDelimiter string
)

func init() {
	locEncodeCmd.Flags().BoolVar(&locFormatted, "formatted", false, "Show block coordinates without the world")
	locPathCmd.Flags().StringVar(&locDelimiter, "delimiter", location.PathDelimiter, "Separator between locations")

	LocCmd.AddCommand(locDecodeCmd)
	LocCmd.AddCommand(locEncodeCmd)
	LocCmd.AddCommand(locPathCmd)
}

func positionRows(ps []world.Position) [][]string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			strconv.FormatFloat(p.Z, 'f', -1, 64),
			p.World,
			p.Cell().String(),
		}
	}
	return rows
}

var positionHeaders = []string{"#", "X", "Y", "Z", "World", "Block"}

func runLocDecode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newCodec(cfg).Decode(args[0])
	if err != nil {
		return err
	}
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), p)
	}
	return display.Table(cmd.OutOrStdout(), positionHeaders, positionRows([]world.Position{p}))
}

func runLocEncode(cmd *cobra.Command, args []string) error {
	var coords [3]float64
	for i := range coords {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidRequest, "coordinate %q is not a number", args[i])
		}
		coords[i] = v
	}
	p := world.At(coords[0], coords[1], coords[2], "")
	if len(args) == 4 {
		p.World = args[3]
	}
	if err := p.Validate(); err != nil {
		return err
	}

	text := location.Encode(p, !locFormatted)
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]string{"location": text})
	}
	_, err := cmd.OutOrStdout().Write([]byte(text + "\n"))
	return err
}

func runLocPath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ps, err := newCodec(cfg).DecodeList(args[0], locDelimiter)
	if err != nil {
		return err
	}
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), ps)
	}
	return display.Table(cmd.OutOrStdout(), positionHeaders, positionRows(ps))
}
