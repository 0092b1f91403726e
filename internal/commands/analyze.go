package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/segmental-dev/segmental/internal/config"
	"github.com/segmental-dev/segmental/internal/dataset"
	"github.com/segmental-dev/segmental/internal/model"
	"github.com/segmental-dev/segmental/internal/rfm"
	"github.com/segmental-dev/segmental/internal/runlog"
)

func newAnalyzeCommand() *cobra.Command {
	var projectDir string
	var referenceDate string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score the transaction dataset and export RFM segments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAnalyze(absDir, referenceDate)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&referenceDate, "reference-date", "", "recency reference date (YYYY-MM-DD, overrides config)")

	return cmd
}

func runAnalyze(projectDir, referenceDate string) error {
	cfg, err := config.Load(filepath.Join(projectDir, config.FileName))
	if err != nil {
		return err
	}

	if referenceDate != "" {
		cfg.Analysis.ReferenceDate = referenceDate
	}
	reference, err := cfg.Analysis.ReferenceDateTime()
	if err != nil {
		return err
	}

	store := dataset.NewStore(filepath.Join(projectDir, cfg.Data.Dir))
	txns, err := store.LoadTransactions()
	if err != nil {
		return err
	}

	scorer := rfm.NewScorer(reference)
	scores := scorer.CalculateScores(model.PurchaseRecords(txns))
	if err := store.SaveScores(scores); err != nil {
		return err
	}

	printSummary(scorer.ReferenceDate(), scores)

	details := fmt.Sprintf("transactions=%d customers=%d reference=%s",
		len(txns), len(scores), scorer.ReferenceDate().Format("2006-01-02"))
	if err := runlog.Append(projectDir, []runlog.Entry{runlog.NewEntry("analyze", details)}); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}

	fmt.Printf("\nScores written to %s\n", filepath.Join(store.Dir(), dataset.ScoresFile))
	return nil
}

func printSummary(reference time.Time, scores []rfm.Score) {
	summary := rfm.SegmentSummary(scores)

	segments := make([]string, 0, len(summary))
	for segment := range summary {
		segments = append(segments, segment)
	}
	sort.Strings(segments)

	fmt.Printf("RFM analysis of %d customers (reference %s)\n\n", len(scores), reference.Format("2006-01-02"))
	fmt.Printf("%-20s %6s %12s %14s %13s %15s\n", "Segment", "Count", "Avg Recency", "Avg Frequency", "Avg Monetary", "Total Monetary")
	for _, segment := range segments {
		stats := summary[segment]
		fmt.Printf("%-20s %6d %12s %14s %13s %15s\n",
			segment,
			stats.Count,
			stats.AvgRecency.StringFixed(2),
			stats.AvgFrequency.StringFixed(2),
			stats.AvgMonetary.StringFixed(2),
			stats.TotalMonetary.StringFixed(2),
		)
	}
}
