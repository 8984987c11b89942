/*
Copyright © 2026 Alaska Center for Conservation Science

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"

	"github.com/accs-uaa/avdb/internal/iodb"
	"github.com/accs-uaa/avdb/internal/ioload"
	"github.com/accs-uaa/avdb/pkg/config"
	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/accs-uaa/avdb/pkg/parserpool"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	var (
		datasetIDs     []int
		outputDir      string
		dryRun         bool
		acceptProblems bool
	)

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load survey datasets into the database",
		Long: `Load per-project survey datasets into the database.

This command:
  1. Reads datasets.yaml to discover the configured datasets
  2. Reads each dataset (CSV directory or SQLite file) in parallel
  3. Applies per-dataset name overrides and exclusions
  4. Merges duplicate cover records, summing their percents
  5. Resolves taxon names against the loaded taxonomy
  6. Normalizes controlled vocabularies and checks numeric ranges
  7. Validates coordinates against the Alaska-region bounds
  8. Writes the problem list CSV for any validation failures
  9. Commits all destination tables in one transaction

Datasets with validation problems are withheld from the database
phase. Use --accept-problems to load the passing datasets anyway,
or --dry-run to stop after validation.

Survey datasets configured in: ~/.config/avdb/datasets.yaml

Examples:
  # Load all configured datasets
  avdb load

  # Load specific datasets only
  avdb load --datasets 25,26
  avdb load -s 25,26

  # Validate without writing to the database
  avdb load --dry-run

  # Load passing datasets despite problems elsewhere
  avdb load --accept-problems`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(
				cmd, datasetIDs, outputDir,
				dryRun, acceptProblems,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().IntSliceVarP(
		&datasetIDs, "datasets", "s", []int{},
		"dataset IDs to load (empty = all)",
	)
	loadCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"directory for CSV artifacts (default: cache dir)",
	)
	loadCmd.Flags().BoolVar(
		&dryRun, "dry-run", false,
		"validate and write artifacts, skip the database phase",
	)
	loadCmd.Flags().BoolVar(
		&acceptProblems, "accept-problems", false,
		"load passing datasets even when others fail validation",
	)

	return loadCmd
}

func runLoad(
	cmd *cobra.Command,
	datasetIDs []int,
	outputDir string,
	dryRun bool,
	acceptProblems bool,
) error {
	ctx := context.Background()

	// Build options from explicitly set flags
	var loadOpts []config.Option

	if cmd.Flags().Changed("datasets") {
		loadOpts = append(loadOpts,
			config.OptLoadDatasetIDs(datasetIDs))
	}
	if cmd.Flags().Changed("output") {
		loadOpts = append(loadOpts,
			config.OptLoadOutputDir(outputDir))
	}
	if cmd.Flags().Changed("dry-run") {
		loadOpts = append(loadOpts,
			config.OptLoadDryRun(dryRun))
	}
	if cmd.Flags().Changed("accept-problems") {
		loadOpts = append(loadOpts,
			config.OptLoadAcceptProblems(acceptProblems))
	}

	if len(loadOpts) > 0 {
		cfg.Update(loadOpts)
	}

	// Create database operator
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	// Check if database has tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		err = &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'avdb schema'</em> and <em>'avdb taxa'</em> first.`,
			Err: errors.New("cannot load data into empty database"),
		}
		return err
	}

	parsers := parserpool.NewPool(cfg.JobsNumber)
	defer parsers.Close()

	loader := ioload.NewLoader(op, parsers)

	gn.Info("Starting survey dataset load...")
	if err := loader.Load(ctx, cfg); err != nil {
		return err
	}

	return nil
}
