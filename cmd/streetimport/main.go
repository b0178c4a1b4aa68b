package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"streetimport/internal/config"
	"streetimport/internal/domain"
	"streetimport/internal/gateway"
	"streetimport/internal/logger"
	"streetimport/internal/usecase"
)

const serviceName = "streetimport"

var errBatchFailed = errors.New("one or more batches failed")

type options struct {
	configPath string
	migrate    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errBatchFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "streetimport [flags] FILE...",
		Short: "Import street recruitment and welcome call files into the CRM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "configs/streetimport.yaml", "Path to the YAML configuration")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Create missing tables before importing")

	return cmd
}

func run(ctx context.Context, opts options, files []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := gateway.OpenPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	store := gateway.NewPostgresStore(db, cfg.Import.Recruiter.IdentifierType, log)
	if opts.migrate {
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
	}
	source := gateway.NewFileRecordSource(cfg.Input.Delimiter)

	results := make([]domain.BatchResult, 0, len(files))
	failed := false
	for _, file := range files {
		// every file is its own batch with its own report
		importer, err := usecase.NewImporter(cfg, store, log)
		if err != nil {
			return err
		}

		result, err := importer.Run(ctx, source, file)
		if err != nil {
			log.Error("Batch aborted", zap.String("file", file), zap.Error(err))
		}
		results = append(results, result)
		if result.Failed() {
			failed = true
		}
		if ctx.Err() != nil {
			break
		}
	}

	output, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	fmt.Println(string(output))

	if failed {
		return errBatchFailed
	}
	return nil
}
