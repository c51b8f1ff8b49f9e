package cmd

import (
	"context"
	"fmt"
	"time"

	"alma-utilities/core/alma"
	"alma-utilities/core/config"
	"alma-utilities/core/database"
	"alma-utilities/core/dataset"
	"alma-utilities/core/logger"
	"alma-utilities/core/reconcile"
	"alma-utilities/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var processOutput string

// processCmd runs the reconciliation pipeline over a local CSV file.
var processCmd = &cobra.Command{
	Use:   "process <file.csv>",
	Short: "Fill empty mms_id values in a CSV from the Alma API",
	Long: `Process a CSV export to fill empty mms_id values.

Each row with an originating_system_id and no mms_id is looked up in Alma;
found MMS IDs are written back into the file. Rows that already carry an
MMS ID are never re-queried, so re-running over the same file is safe.

The file is updated in place by default and must have both an
'originating_system_id' and an 'mms_id' column.

Examples:
  # Update the file in place
  alma-utilities process import.csv

  # Write the result elsewhere, leaving the source untouched
  alma-utilities process import.csv --output updated.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "Destination path (defaults to updating the source in place)")
	RootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	source := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if cfg.Alma.APIKey == "" {
		return fmt.Errorf("an Alma API key is required (set ALMA_API_KEY)")
	}

	// Load first: schema and encoding problems must fail before any lookup.
	ds, err := dataset.Load(source)
	if err != nil {
		return err
	}

	destination := processOutput
	if destination == "" {
		destination = source
	}

	l.Info("Processing dataset",
		zap.String("source", source),
		zap.Int("rows", ds.Len()),
		zap.String("alma_base_url", cfg.Alma.BaseURL),
	)

	client := alma.NewClient(cfg.Alma, l)

	total := ds.Len()
	spec := &reconcile.Spec{
		Resolver: client,
		Logger:   l,
		OnProgress: func(p reconcile.Progress) {
			l.Debug("Record processed",
				zap.Int("row", p.Index+1),
				zap.Int("of", total),
				zap.String("outcome", string(p.Outcome)),
			)
		},
	}

	startedAt := time.Now()
	summary, err := reconcile.Run(ctx, spec, ds)
	if err != nil {
		return err
	}

	if err := dataset.Save(ds, destination); err != nil {
		return err
	}

	l.Info("Processing complete",
		zap.String("destination", destination),
		zap.Int("total", summary.Total),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("not_found", summary.NotFound),
		zap.Int("errors", summary.Errors),
	)

	recordRun(ctx, cfg, l, source, summary, startedAt)
	return nil
}

// recordRun persists the run when history is configured. Failures here are
// warnings: the dataset is already saved and the run itself succeeded.
func recordRun(ctx context.Context, cfg *config.Config, l *zap.Logger, source string, summary *reconcile.Summary, startedAt time.Time) {
	if !cfg.Database.Enabled {
		return
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Run history database unavailable", zap.Error(err))
		return
	}

	recorder := history.NewRecorder(db, l)
	if err := recorder.Migrate(); err != nil {
		l.Warn("Failed to migrate run history schema", zap.Error(err))
		return
	}
	if _, err := recorder.Record(ctx, source, summary, startedAt, time.Now()); err != nil {
		l.Warn("Failed to record run", zap.Error(err))
	}
}
