package commands

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/segmental-dev/segmental/internal/api"
	"github.com/segmental-dev/segmental/internal/config"
	"github.com/segmental-dev/segmental/internal/dataset"
	"github.com/segmental-dev/segmental/internal/rfm"
	"github.com/segmental-dev/segmental/internal/runlog"
)

func newServeCommand() *cobra.Command {
	var projectDir string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the RFM web API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runServe(absDir, addr)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(projectDir, addr string) error {
	cfg, err := config.Load(filepath.Join(projectDir, config.FileName))
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	reference, err := cfg.Analysis.ReferenceDateTime()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	store := dataset.NewStore(filepath.Join(projectDir, cfg.Data.Dir))
	server := api.NewServer(store, rfm.NewScorer(reference), logger)

	if err := runlog.Append(projectDir, []runlog.Entry{runlog.NewEntry("serve", "addr="+addr)}); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}

	logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return srv.ListenAndServe()
}
