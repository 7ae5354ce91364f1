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

var CommentsCmd = &cobra.Command{
	Use:   "comments [path]",
	Short: "Read g-code from given path and print its comments.",
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
		line := 0
		for scanner.Scan() {
			line++
			comment := gcode.Comment(scanner.Text())
			if comment == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d: %s\n", line, comment); err != nil {
				return err
			}
		}
		return scanner.Err()
	}),
}

func init() {
	AddOutputFlags(CommentsCmd)
	RootCmd.AddCommand(CommentsCmd)
}
