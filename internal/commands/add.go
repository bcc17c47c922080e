package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/activity"
	"github.com/outlay-dev/outlay/internal/capture"
	"github.com/outlay-dev/outlay/internal/gitops"
)

func newAddCommand() *cobra.Command {
	var dir string
	var dateStr string
	var category string
	var amountStr string
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(dir, dateStr, category, amountStr, note)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(capture.DateFormat), "expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount spent (required)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(dir, dateStr, category, amountStr, note string) error {
	cfg, store, err := openProject(dir)
	if err != nil {
		return err
	}

	rec, err := capture.NewRecord(dateStr, category, amountStr, note)
	if err != nil {
		return err
	}

	if err := store.Append(rec); err != nil {
		return err
	}

	details := fmt.Sprintf("%s %s %s", rec.Date.Format(capture.DateFormat), rec.Category, rec.Amount.StringFixed(2))

	hash := ""
	if cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		hash, err = gitops.CommitPaths(dir, []string{storeFile(cfg)},
			"add: "+details, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing ledger: %w", err)
		}
	}

	entry := activity.Entry{
		Timestamp:  time.Now(),
		Action:     "add",
		Details:    details,
		CommitHash: hash,
	}
	if err := activity.Append(dir, entry); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}

	fmt.Printf("Recorded %s\n", details)
	return nil
}
