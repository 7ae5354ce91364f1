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

var stripTruncate int
var defaultStripTruncate = -1

var stripKeepWhitespace bool
var defaultStripKeepWhitespace = false

var StripCmd = &cobra.Command{
	Use:   "strip [path]",
	Short: "Read g-code from given path and strip comments and whitespace.",
	Args:  cobra.ExactArgs(1),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		path := args[0]

		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"path", path,
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
			line := gcode.StripComments(scanner.Text())
			if !stripKeepWhitespace {
				line = gcode.RemoveWhitespace(line)
			}
			if stripTruncate >= 0 {
				line = gcode.TruncateDecimals(stripTruncate, line)
			}
			if line == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return scanner.Err()
	}),
}

func init() {
	StripCmd.PersistentFlags().IntVarP(
		&stripTruncate, "truncate-decimals", "t", defaultStripTruncate,
		"Rewrite decimal values to this many fractional digits; negative leaves them alone",
	)
	StripCmd.PersistentFlags().BoolVarP(
		&stripKeepWhitespace, "keep-whitespace", "k", defaultStripKeepWhitespace,
		"Keep whitespace instead of removing it",
	)

	AddOutputFlags(StripCmd)
	RootCmd.AddCommand(StripCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		stripTruncate = defaultStripTruncate
		stripKeepWhitespace = defaultStripKeepWhitespace
	})
}
