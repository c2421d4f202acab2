package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/parkour/display"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/location"
	"github.com/teranos/parkour/logger"
	"github.com/teranos/parkour/world"
)

// RegionCmd groups region analysis commands
var RegionCmd = &cobra.Command{
	Use:   "region",
	Short: "Analyze cuboid regions",
	Long: `Analyze the cuboid spanned by two corner locations.

Corners are written as (x,y,z,world); either order works.

Examples:
  parkour region volume "(0,0,0,world)" "(2,2,2,world)"
  parkour region chunks "(0,0,0,world)" "(17,0,0,world)"
  parkour region scan "(0,0,0,world)" "(9,3,9,world)" --blocks course.yaml --expect air`,
}

var regionVolumeCmd = &cobra.Command{
	Use:   "volume <corner> <corner>",
	Short: "Show the region's bounds and cell count",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegionVolume,
}

var regionChunksCmd = &cobra.Command{
	Use:   "chunks <corner> <corner>",
	Short: "List the 16x16 chunks covering the region",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegionChunks,
}

var regionScanCmd = &cobra.Command{
	Use:   "scan <corner> <corner>",
	Short: "Scan a block file for the region's contents",
	Long: `Scan the region's blocks from a YAML block file.

With --expect, reports whether any block differs from that material.
Without it, lists every non-air block in iteration order.

Block file format:
  world: world
  blocks:
    - at: [1, 0, 1]
      material: stone
    - from: [0, 1, 0]
      to: [3, 1, 3]
      material: gold_block`,
	Args: cobra.ExactArgs(2),
	RunE: runRegionScan,
}

var (
	scanBlocksFile string
	scanExpect     string
	scanRPS        float64
)

func init() {
	regionScanCmd.Flags().StringVar(&scanBlocksFile, "blocks", "", "YAML block file to scan (required)")
	regionScanCmd.Flags().StringVar(&scanExpect, "expect", "", "Report whether any block differs from this material")
	regionScanCmd.Flags().Float64Var(&scanRPS, "rps", -1, "Rows per second (default: scan.rows_per_second)")
	regionScanCmd.MarkFlagRequired("blocks")

	RegionCmd.AddCommand(regionVolumeCmd)
	RegionCmd.AddCommand(regionChunksCmd)
	RegionCmd.AddCommand(regionScanCmd)
}

func parseRegion(codec *location.Codec, a, b string) (world.Region, error) {
	pa, err := codec.Decode(a)
	if err != nil {
		return world.Region{}, errors.Wrap(err, "first corner")
	}
	pb, err := codec.Decode(b)
	if err != nil {
		return world.Region{}, errors.Wrap(err, "second corner")
	}
	return world.Normalize(pa, pb)
}

// maxListedChunks bounds how many chunks `region chunks` will print.
const maxListedChunks = 1 << 16

// regionSummary reports saturated counts with the matching overflow flag set.
type regionSummary struct {
	World          string `json:"world"`
	Min            string `json:"min"`
	Max            string `json:"max"`
	Size           [3]int `json:"size"`
	Volume         int    `json:"volume"`
	VolumeOverflow bool   `json:"volume_overflow,omitempty"`
	Chunks         int    `json:"chunks"`
	ChunksOverflow bool   `json:"chunks_overflow,omitempty"`
}

func countText(n int, ok bool) string {
	if !ok {
		return "more than " + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func runRegionVolume(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := parseRegion(newCodec(cfg), args[0], args[1])
	if err != nil {
		return err
	}

	dx, dy, dz := r.Size()
	volume, volumeOK := r.Volume()
	chunks, chunksOK := world.ChunkCount(r)
	summary := regionSummary{
		World:          r.World(),
		Min:            r.MinCell().String(),
		Max:            r.MaxCell().String(),
		Size:           [3]int{dx, dy, dz},
		Volume:         volume,
		VolumeOverflow: !volumeOK,
		Chunks:         chunks,
		ChunksOverflow: !chunksOK,
	}
	logger.LoggerFromContext(cmd.Context()).Debugw("Region measured",
		logger.FieldRegion, r.String(),
		logger.FieldVolume, countText(volume, volumeOK),
	)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), summary)
	}
	return display.KeyValues(cmd.OutOrStdout(), [][2]string{
		{"World", summary.World},
		{"Min", summary.Min},
		{"Max", summary.Max},
		{"Size", fmt.Sprintf("%d x %d x %d", dx, dy, dz)},
		{"Volume", countText(volume, volumeOK)},
		{"Chunks", countText(chunks, chunksOK)},
	})
}

func runRegionChunks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := parseRegion(newCodec(cfg), args[0], args[1])
	if err != nil {
		return err
	}

	if n, ok := world.ChunkCount(r); !ok || n > maxListedChunks {
		return errors.WithHint(
			errors.NewInvalidRequestError("region %s covers %s chunks, more than the %d this command lists", r, countText(n, ok), maxListedChunks),
			"use 'parkour region volume' for the chunk count")
	}
	chunks := world.ChunksCovering(r)
	logger.LoggerFromContext(cmd.Context()).Debugw("Chunks covering region",
		logger.FieldRegion, r.String(),
		logger.FieldChunks, len(chunks),
	)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), chunks)
	}
	rows := make([][]string, len(chunks))
	for i, c := range chunks {
		o := c.Origin()
		rows[i] = []string{strconv.Itoa(c.X), strconv.Itoa(c.Z), fmt.Sprintf("%d, %d", o.X, o.Z)}
	}
	return display.Table(cmd.OutOrStdout(), []string{"Chunk X", "Chunk Z", "Origin (x, z)"}, rows)
}

type scanResult struct {
	Region     string        `json:"region"`
	Expect     string        `json:"expect,omitempty"`
	Mismatch   *bool         `json:"mismatch,omitempty"`
	Blocks     []world.Block `json:"blocks,omitempty"`
	BlockCount int           `json:"block_count"`
}

func runRegionScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := parseRegion(newCodec(cfg), args[0], args[1])
	if err != nil {
		return err
	}

	blocks, fileWorld, err := world.LoadMemWorld(scanBlocksFile)
	if err != nil {
		return err
	}
	if fileWorld != "" && r.World() != "" && fileWorld != r.World() {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidRegion, "region is in %q but %s describes %q", r.World(), scanBlocksFile, fileWorld),
			"use corners in world %q", fileWorld)
	}

	result := scanResult{Region: r.String(), Expect: scanExpect}
	if scanExpect != "" {
		mismatch := world.ContainsNonMatching(r, blocks, world.Material(scanExpect))
		result.Mismatch = &mismatch
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), result)
		}
		if mismatch {
			pterm.Warning.Printfln("Region %s contains blocks other than %s", r, scanExpect)
		} else {
			pterm.Success.Printfln("Region %s is entirely %s", r, scanExpect)
		}
		return nil
	}

	rps := scanRPS
	if rps < 0 {
		rps = cfg.Scan.RowsPerSecond
	}
	scanner := world.NewScanner(blocks, world.ScanOptions{
		RowsPerSecond: rps,
		Burst:         cfg.Scan.Burst,
		TraceRows:     logger.ShouldLogTrace(verbosity(cmd)),
		Logger:        logger.ComponentLogger("scan"),
	})

	var spinner *pterm.SpinnerPrinter
	if !display.ShouldOutputJSON(cmd) && rps > 0 {
		spinner, _ = pterm.DefaultSpinner.Start(fmt.Sprintf("Scanning %s cells...", countText(r.Volume())))
	}
	found, err := scanner.Collect(cmd.Context(), r, nil)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	result.Blocks = found
	result.BlockCount = len(found)
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), result)
	}

	rows := make([][]string, len(found))
	for i, b := range found {
		rows[i] = []string{b.Cell.String(), string(b.Material)}
	}
	if err := display.Table(cmd.OutOrStdout(), []string{"Cell", "Material"}, rows); err != nil {
		return err
	}
	pterm.Info.Printfln("%d non-air blocks in %s cells", len(found), countText(r.Volume()))
	return nil
}
