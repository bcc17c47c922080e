package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/activity"
	"github.com/outlay-dev/outlay/internal/capture"
	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/gitops"
	"github.com/outlay-dev/outlay/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var monthlyIncome string
	var yearlyIncome string
	var savings string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new outlay project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, monthlyIncome, yearlyIncome, savings, noGit)
		},
	}

	cmd.Flags().StringVar(&monthlyIncome, "monthly-income", "", "monthly income")
	cmd.Flags().StringVar(&yearlyIncome, "yearly-income", "", "yearly income (used when no monthly figure is given)")
	cmd.Flags().StringVar(&savings, "savings", "0.00", "monthly savings goal")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git initialization")

	return cmd
}

func runInit(dir, monthlyIncome, yearlyIncome, savings string, noGit bool) error {
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default()
	if noGit {
		cfg.Git.AutoCommit = false
	}
	// Amounts are checked here so a typo fails init, not the first report.
	for _, in := range []struct{ flag, value string }{
		{"monthly-income", monthlyIncome},
		{"yearly-income", yearlyIncome},
		{"savings", savings},
	} {
		if in.value == "" {
			continue
		}
		if _, err := capture.ParseAmount(in.value); err != nil {
			return fmt.Errorf("--%s: %w", in.flag, err)
		}
	}
	cfg.Budget.MonthlyIncome = monthlyIncome
	cfg.Budget.YearlyIncome = yearlyIncome
	cfg.Budget.SavingsGoal = savings

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	store := ledger.NewStore(filepath.Join(dir, storeFile(cfg)))
	if err := store.Init(); err != nil {
		return err
	}

	// Bank exports contain more than expenses; keep them out of version
	// control.
	gitignore := "import/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	hash := ""
	if !noGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}

		var err error
		hash, err = gitops.CommitPaths(dir,
			[]string{config.FileName, storeFile(cfg), ".gitignore"},
			"init: new outlay project", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	entry := activity.Entry{
		Timestamp:  time.Now(),
		Action:     "init",
		Details:    "project initialized",
		CommitHash: hash,
	}
	if err := activity.Append(dir, entry); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}

	fmt.Printf("Initialized outlay project at %s\n", dir)
	return nil
}
