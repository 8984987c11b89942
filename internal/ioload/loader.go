// Package ioload implements the avdb.Loader interface. It orchestrates
// dataset ingestion, name resolution, vocabulary normalization, and
// the transactional write of all destination tables.
package ioload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/accs-uaa/avdb/internal/ioingest"
	"github.com/accs-uaa/avdb/pkg/avdb"
	"github.com/accs-uaa/avdb/pkg/config"
	"github.com/accs-uaa/avdb/pkg/datasets"
	"github.com/accs-uaa/avdb/pkg/db"
	"github.com/accs-uaa/avdb/pkg/parserpool"
	"github.com/accs-uaa/avdb/pkg/schema"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// loader implements avdb.Loader.
type loader struct {
	operator db.Operator
	parsers  parserpool.Pool
}

// NewLoader creates a new Loader.
func NewLoader(
	op db.Operator, parsers parserpool.Pool,
) avdb.Loader {
	return &loader{operator: op, parsers: parsers}
}

// Load ingests the configured datasets and writes the destination
// tables in one transaction.
func (l *loader) Load(
	ctx context.Context, cfg *config.Config,
) error {
	return l.run(ctx, cfg, cfg.Load.DryRun)
}

// Check runs ingestion and validation only, writing CSV artifacts
// instead of database rows.
func (l *loader) Check(
	ctx context.Context, cfg *config.Config,
) error {
	return l.run(ctx, cfg, true)
}

func (l *loader) run(
	ctx context.Context, cfg *config.Config, dryRun bool,
) error {
	start := time.Now()
	runID := uuid.New().String()[:8]
	slog.Info("Starting load run", "run_id", runID, "dry_run", dryRun)

	selected, err := l.selectDatasets(cfg)
	if err != nil {
		return err
	}

	store, err := loadStore(ctx, l.operator.Pool())
	if err != nil {
		return err
	}
	norm, keys, err := loadDictionary(ctx, l.operator.Pool())
	if err != nil {
		return err
	}

	read, err := l.readDatasets(ctx, cfg, selected)
	if err != nil {
		return err
	}

	// Processing order follows dataset ID order from selection, so
	// results never depend on which read finished first.
	bar := pb.Full.Start(len(read))
	bar.Set(pb.CleanOnFinish, true)

	var results []*processed
	var problems []Problem
	failed, hard := 0, 0
	for _, data := range read {
		p := processDataset(data, store, norm, keys)
		results = append(results, p)
		problems = append(problems, p.Problems...)
		for _, prob := range p.Problems {
			if prob.Hard {
				hard++
			}
		}
		if p.Failed {
			failed++
			slog.Warn("Dataset failed validation",
				"dataset", p.Code,
				"problems", len(p.Problems),
			)
		}
		bar.Increment()
	}
	bar.Finish()

	outputDir := cfg.Load.OutputDir
	if outputDir == "" {
		outputDir = config.CacheDir(cfg.HomeDir)
	}

	artifact := ""
	if len(problems) > 0 {
		artifact, err = writeProblems(outputDir, runID, problems)
		if err != nil {
			return err
		}
		gn.Warn("Problem list written to <em>%s</em>", artifact)
	}

	if failed == len(results) && failed > 0 {
		return AllDatasetsFailedError(artifact)
	}

	var passing []*processed
	for _, p := range results {
		if !p.Failed {
			passing = append(passing, p)
		}
	}

	// Per-entity extracts are the audit record of what enters the
	// database phase, written for dry and real runs alike.
	extracts := 0
	for _, p := range passing {
		n, err := writeEntityArtifacts(outputDir, runID, p)
		if err != nil {
			return err
		}
		extracts += n
	}

	if dryRun {
		gn.Info("Dry run complete: <em>%d</em> extract(s) in %s under %s",
			extracts,
			gnfmt.TimeString(time.Since(start).Seconds()),
			outputDir,
		)
		return nil
	}

	// Hard violations cannot be waived; --accept-problems only covers
	// unresolved names.
	if hard > 0 {
		return FatalProblemsError(hard, artifact)
	}
	if failed > 0 && !cfg.Load.AcceptProblems {
		return ProblemsError(failed, artifact)
	}

	if err := l.write(ctx, cfg, passing); err != nil {
		return err
	}

	gn.Info("Load complete: <em>%d</em> dataset(s) in %s",
		len(passing),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// selectDatasets reads datasets.yaml and picks the configured
// datasets matching the requested IDs.
func (l *loader) selectDatasets(
	cfg *config.Config,
) ([]datasets.Dataset, error) {
	path := config.DatasetsFilePath(cfg.HomeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, datasets.ConfigError(
			"cannot read "+path, err)
	}

	list, err := datasets.Parse(data)
	if err != nil {
		return nil, err
	}

	selected, err := list.Select(cfg.Load.DatasetIDs)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, datasets.ConfigError(
			"no datasets configured in "+path, nil)
	}
	return selected, nil
}

// readDatasets reads all selected datasets in parallel, bounded by
// the configured number of jobs. Results come back in selection
// order regardless of completion order.
func (l *loader) readDatasets(
	ctx context.Context,
	cfg *config.Config,
	selected []datasets.Dataset,
) ([]*ioingest.Data, error) {
	results := make([]*ioingest.Data, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.JobsNumber)

	for i, ds := range selected {
		g.Go(func() error {
			data, err := ioingest.ReadDataset(gctx, ds)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// write replaces the rows of the passing datasets inside one
// transaction. Each table gets its own savepoint, so a failure names
// the offending table while the whole load still rolls back as a
// unit.
func (l *loader) write(
	ctx context.Context, cfg *config.Config, results []*processed,
) error {
	pool := l.operator.Pool()
	if pool == nil {
		return TransactionError(fmt.Errorf("not connected"))
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return TransactionError(err)
	}
	defer tx.Rollback(ctx)

	if err := l.deleteExisting(ctx, tx, results); err != nil {
		return err
	}

	order := schema.WriteOrder()
	for _, table := range order {
		if table == "dictionary" {
			// Dictionary rows belong to the taxonomy build.
			continue
		}

		var rows [][]any
		for _, p := range results {
			rows = append(rows, p.Rows[table]...)
		}
		if len(rows) == 0 {
			continue
		}

		if err := l.insertTable(ctx, tx, cfg, table, rows); err != nil {
			return err
		}
		slog.Info("Loaded table",
			"table", table,
			"rows", humanize.Comma(int64(len(rows))),
		)
	}

	if err := tx.Commit(ctx); err != nil {
		return TransactionError(err)
	}
	return nil
}

// insertTable bulk-inserts one table under its own savepoint, in
// batches of cfg.Database.BatchSize rows with a progress bar.
func (l *loader) insertTable(
	ctx context.Context,
	tx pgx.Tx,
	cfg *config.Config,
	table string,
	rows [][]any,
) error {
	if _, err := tx.Exec(ctx, "SAVEPOINT sp_"+table); err != nil {
		return TransactionError(err)
	}

	cols := coverColumns
	if table != "vegetation_cover" {
		cols = columnsOf(table)
	}

	batchSize := cfg.Database.BatchSize
	if batchSize <= 0 {
		batchSize = len(rows)
	}

	bar := pb.Full.Start(len(rows))
	bar.Set(pb.CleanOnFinish, true)

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{table},
			cols,
			pgx.CopyFromRows(rows[start:end]),
		)
		if err != nil {
			bar.Finish()
			// Roll back to the savepoint so the error reports cleanly;
			// the deferred rollback still aborts the whole load.
			_, _ = tx.Exec(ctx, "ROLLBACK TO SAVEPOINT sp_"+table)
			return TableError(table, err)
		}
		bar.Add(end - start)
	}
	bar.Finish()

	if _, err := tx.Exec(
		ctx, "RELEASE SAVEPOINT sp_"+table,
	); err != nil {
		return TransactionError(err)
	}
	return nil
}

// deleteExisting clears prior rows of the datasets being reloaded,
// child tables first.
func (l *loader) deleteExisting(
	ctx context.Context, tx pgx.Tx, results []*processed,
) error {
	var visitCodes, siteCodes, projectCodes []string
	for _, p := range results {
		for _, row := range p.Rows["site_visit"] {
			visitCodes = append(visitCodes, row[0].(string))
		}
		for _, row := range p.Rows["site"] {
			siteCodes = append(siteCodes, row[0].(string))
		}
		for _, row := range p.Rows["project"] {
			projectCodes = append(projectCodes, row[0].(string))
		}
	}

	order := schema.WriteOrder()
	for i := len(order) - 1; i >= 0; i-- {
		table := order[i]

		var col string
		var keys []string
		switch table {
		case "dictionary":
			continue
		case "project":
			col, keys = "project_code", projectCodes
		case "site":
			col, keys = "site_code", siteCodes
		case "site_visit":
			col, keys = "site_visit_code", visitCodes
		default:
			col, keys = "site_visit_code", visitCodes
		}
		if len(keys) == 0 {
			continue
		}

		query := fmt.Sprintf(
			"DELETE FROM %s WHERE %s = ANY($1)", table, col)
		if _, err := tx.Exec(ctx, query, keys); err != nil {
			return TableError(table, err)
		}
	}
	return nil
}
