package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/capture"
	"github.com/outlay-dev/outlay/internal/engine"
	"github.com/outlay-dev/outlay/internal/render"
)

func newReportCommand() *cobra.Command {
	var dir string
	var asOfStr string
	var skipBadRows bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show period summaries, a next-month forecast, and remaining budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			color := isatty.IsTerminal(os.Stdout.Fd())
			return runReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), dir, asOfStr, skipBadRows, color)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&asOfStr, "as-of", time.Now().Format(capture.DateFormat), "report date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&skipBadRows, "skip-bad-rows", false, "report over valid rows when the ledger has malformed ones")

	return cmd
}

func runReport(out, errOut io.Writer, dir, asOfStr string, skipBadRows, color bool) error {
	cfg, store, err := openProject(dir)
	if err != nil {
		return err
	}

	asOf, err := time.Parse(capture.DateFormat, asOfStr)
	if err != nil {
		return engine.ValidationError{Field: "as-of", Message: asOfStr + " is not a YYYY-MM-DD date"}
	}

	// One snapshot read; the engine never touches the file again.
	records, rowErrs, err := store.ListAll()
	if err != nil {
		return err
	}
	if len(rowErrs) > 0 {
		for _, re := range rowErrs {
			fmt.Fprintf(errOut, "warning: %s: %s\n", store.Path(), re)
		}
		if !skipBadRows {
			return fmt.Errorf("%d malformed row(s) in %s (pass --skip-bad-rows to report on the valid ones)",
				len(rowErrs), store.Path())
		}
	}

	goal, err := cfg.Goal()
	if err != nil {
		return err
	}

	rep, err := engine.BuildReport(records, goal, asOf)
	if err != nil {
		return err
	}

	render.New(color).Report(out, rep)
	return nil
}
