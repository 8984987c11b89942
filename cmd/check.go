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

	"github.com/accs-uaa/avdb/internal/iodb"
	"github.com/accs-uaa/avdb/internal/ioload"
	"github.com/accs-uaa/avdb/pkg/config"
	"github.com/accs-uaa/avdb/pkg/parserpool"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCheckCmd() *cobra.Command {
	var (
		datasetIDs []int
		outputDir  string
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate survey datasets without loading them",
		Long: `Check runs the full ingestion pipeline with no database writes.

Datasets are read, overrides applied, names resolved against the
loaded taxonomy, vocabularies normalized, and coordinates checked
against the Alaska-region bounds. The problem list and normalized
vegetation cover extracts land in the output directory for review.

Examples:
  avdb check
  avdb check --datasets 25,26
  avdb check -s 25 -o /tmp/review`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, datasetIDs, outputDir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	checkCmd.Flags().IntSliceVarP(
		&datasetIDs, "datasets", "s", []int{},
		"dataset IDs to check (empty = all)",
	)
	checkCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"directory for CSV artifacts (default: cache dir)",
	)

	return checkCmd
}

func runCheck(
	cmd *cobra.Command,
	datasetIDs []int,
	outputDir string,
) error {
	ctx := context.Background()

	var checkOpts []config.Option
	if cmd.Flags().Changed("datasets") {
		checkOpts = append(checkOpts,
			config.OptLoadDatasetIDs(datasetIDs))
	}
	if cmd.Flags().Changed("output") {
		checkOpts = append(checkOpts,
			config.OptLoadOutputDir(outputDir))
	}
	if len(checkOpts) > 0 {
		cfg.Update(checkOpts)
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

	parsers := parserpool.NewPool(cfg.JobsNumber)
	defer parsers.Close()

	loader := ioload.NewLoader(op, parsers)

	gn.Info("Validating survey datasets (no database writes)...")
	if err := loader.Check(ctx, cfg); err != nil {
		return err
	}

	return nil
}
