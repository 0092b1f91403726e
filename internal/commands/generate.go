package commands

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/segmental-dev/segmental/internal/config"
	"github.com/segmental-dev/segmental/internal/dataset"
	"github.com/segmental-dev/segmental/internal/generate"
	"github.com/segmental-dev/segmental/internal/runlog"
)

func newGenerateCommand() *cobra.Command {
	var projectDir string
	var customers int
	var transactions int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic customer/transaction dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runGenerate(absDir, customers, transactions, seed)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().IntVar(&customers, "customers", 0, "number of customers (default from config)")
	cmd.Flags().IntVar(&transactions, "transactions", 0, "number of transactions (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config; 0 = time-based)")

	return cmd
}

func runGenerate(projectDir string, customers, transactions int, seed int64) error {
	cfg, err := config.Load(filepath.Join(projectDir, config.FileName))
	if err != nil {
		return err
	}

	if customers == 0 {
		customers = cfg.Generator.Customers
	}
	if transactions == 0 {
		transactions = cfg.Generator.Transactions
	}
	if seed == 0 {
		seed = cfg.Generator.Seed
	}

	bar := progressbar.Default(int64(customers))
	gen := generate.NewDatasetGenerator(seed)
	ds := gen.Generate(generate.Params{
		Customers:    customers,
		Transactions: transactions,
		Progress:     func() { _ = bar.Add(1) },
	})
	_ = bar.Finish()

	store := dataset.NewStore(filepath.Join(projectDir, cfg.Data.Dir))
	if err := store.SaveCustomers(ds.Customers); err != nil {
		return err
	}
	if err := store.SaveTransactions(ds.Transactions); err != nil {
		return err
	}

	details := fmt.Sprintf("customers=%d transactions=%d seed=%d", len(ds.Customers), len(ds.Transactions), seed)
	if err := runlog.Append(projectDir, []runlog.Entry{runlog.NewEntry("generate", details)}); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}

	fmt.Printf("Dataset saved to %s\n", store.Dir())
	fmt.Printf("  - %d customers\n", len(ds.Customers))
	fmt.Printf("  - %d transactions\n", len(ds.Transactions))
	return nil
}
