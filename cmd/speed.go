package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/cgp/gcode"
)

var speedPercent float64
var defaultSpeedPercent float64 = 100

var SpeedCmd = &cobra.Command{
	Use:   "speed [path]",
	Short: "Read g-code from given path and scale all feed rates to a percentage.",
	Args:  cobra.ExactArgs(1),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		path := args[0]

		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"path", path,
			"percent", speedPercent,
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

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if _, err := fmt.Fprintln(w, gcode.OverrideSpeed(scanner.Text(), speedPercent)); err != nil {
				return err
			}
		}
		return scanner.Err()
	}),
}

func init() {
	SpeedCmd.PersistentFlags().Float64VarP(
		&speedPercent, "percent", "s", defaultSpeedPercent,
		"Percentage to scale feed rates by",
	)

	AddOutputFlags(SpeedCmd)
	RootCmd.AddCommand(SpeedCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		speedPercent = defaultSpeedPercent
	})
}
