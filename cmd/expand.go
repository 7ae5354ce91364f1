package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/cgp/gcode"
	cgpFmt "github.com/fornellas/cgp/internal/fmt"
)

var expandMinArcLength float64
var defaultExpandMinArcLength float64 = 0

var expandSegmentLength float64
var defaultExpandSegmentLength float64 = 0.5

var expandPrecision int
var defaultExpandPrecision = 4

var ExpandCmd = &cobra.Command{
	Use:   "expand [path]",
	Short: "Read g-code from given path and expand G2/G3 arcs into G1 segments.",
	Args:  cobra.ExactArgs(1),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		path := args[0]

		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"path", path,
			"min-arc-length", cgpFmt.SprintFloat(expandMinArcLength, 4),
			"segment-length", cgpFmt.SprintFloat(expandSegmentLength, 4),
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, f.Close()) }()

		w, err := outputValue.WriterCloser()
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		// Grbl modal defaults: absolute distance (G90), incremental arc
		// centers (G91.1).
		position := gcode.NewPoint3(0, 0, 0)
		absolute := true
		absoluteIJK := false

		lineNumber := 0
		expanded := 0
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lineNumber++
			raw := scanner.Text()
			line := gcode.StripComments(raw)
			words := gcode.SplitCommand(line)

			arc := false
			clockwise := false
			for _, word := range words {
				if !word.HasAddress('G') {
					continue
				}
				number, err := word.Float()
				if err != nil {
					continue
				}
				switch number {
				case 90:
					absolute = true
				case 91:
					absolute = false
				case 90.1:
					absoluteIJK = true
				case 91.1:
					absoluteIJK = false
				case 2:
					arc = true
					clockwise = true
				case 3:
					arc = true
					clockwise = false
				}
			}

			if !arc {
				// Pass through, still tracking position for when an arc
				// follows.
				position = gcode.UpdatePoint(words, position, absolute)
				if _, err := fmt.Fprintln(w, raw); err != nil {
					return err
				}
				continue
			}

			end := gcode.UpdatePoint(words, position, absolute)
			center, err := gcode.ArcCenter(words, position, end, absoluteIJK, clockwise)
			if err != nil {
				return fmt.Errorf("line %d: %s: %w", lineNumber, raw, err)
			}

			points := gcode.ExpandArc(position, end, center, clockwise, 0, expandMinArcLength, expandSegmentLength)
			if len(points) == 0 {
				// Below the expansion threshold: emit a single straight
				// move instead.
				points = []gcode.Point3{end}
			}

			feeds := gcode.CodesWithAddress(words, 'F')
			previous := position
			for i, point := range points {
				segment := gcode.FormatLinear(previous, point, absolute, expandPrecision)
				if i == 0 && len(feeds) > 0 {
					segment += "F" + feeds[0]
				}
				if _, err := fmt.Fprintln(w, segment); err != nil {
					return err
				}
				previous = point
			}

			position = end
			expanded++
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		logger.Info("Done", "lines", lineNumber, "arcs", expanded)
		return nil
	}),
}

func init() {
	ExpandCmd.PersistentFlags().Float64VarP(
		&expandMinArcLength, "min-arc-length", "m", defaultExpandMinArcLength,
		"Arcs shorter than this are kept as a single straight move",
	)
	ExpandCmd.PersistentFlags().Float64VarP(
		&expandSegmentLength, "segment-length", "l", defaultExpandSegmentLength,
		"Maximum length of each generated segment; 0 uses a fixed segment count",
	)
	ExpandCmd.PersistentFlags().IntVarP(
		&expandPrecision, "precision", "d", defaultExpandPrecision,
		"Decimal digits for generated coordinates",
	)

	AddOutputFlags(ExpandCmd)
	RootCmd.AddCommand(ExpandCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		expandMinArcLength = defaultExpandMinArcLength
		expandSegmentLength = defaultExpandSegmentLength
		expandPrecision = defaultExpandPrecision
	})
}
