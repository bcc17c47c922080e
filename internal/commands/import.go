package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/activity"
	"github.com/outlay-dev/outlay/internal/gitops"
	"github.com/outlay-dev/outlay/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var category string

	cmd := &cobra.Command{
		Use:   "import <format>",
		Short: "Ingest bank CSV exports from the import directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, args[0], category)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&category, "category", "other", "category assigned to imported expenses")

	return cmd
}

func runImport(dir, format, category string) error {
	cfg, store, err := openProject(dir)
	if err != nil {
		return err
	}

	registry := importer.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(registry.Formats(), ", "))
	}

	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	imported := 0
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		txns, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		records := importer.ToRecords(txns, category)
		if len(records) > 0 {
			if err := store.AppendAll(records); err != nil {
				return fmt.Errorf("appending from %s: %w", file.Name, err)
			}
		}

		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}

		fmt.Printf("Imported %d expense(s) from %s\n", len(records), file.Name)
		imported += len(records)
	}

	details := fmt.Sprintf("%d expense(s) from %d file(s) as %q", imported, len(files), category)

	hash := ""
	if cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		hash, err = gitops.CommitPaths(dir, []string{storeFile(cfg)},
			"import: "+details, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing ledger: %w", err)
		}
	}

	entry := activity.Entry{
		Timestamp:  time.Now(),
		Action:     "import",
		Details:    details,
		CommitHash: hash,
	}
	if err := activity.Append(dir, entry); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}

	return nil
}
