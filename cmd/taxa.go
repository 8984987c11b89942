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
	"github.com/accs-uaa/avdb/internal/iotaxa"
	"github.com/accs-uaa/avdb/pkg/config"
	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/accs-uaa/avdb/pkg/parserpool"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getTaxaCmd returns the taxa command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getTaxaCmd() *cobra.Command {
	var (
		checklistFile  string
		dictionaryFile string
	)

	taxaCmd := &cobra.Command{
		Use:   "taxa",
		Short: "Build a taxonomy release from the curated checklist",
		Long: `Build the taxonomy tables from the comprehensive checklist.

This command:
  1. Reads the curated checklist and dictionary CSV files
  2. Generates short taxon codes and resolves code collisions
  3. Flattens synonym chains to direct accepted pointers
  4. Verifies every accepted taxon anchors to a genus concept
  5. Assigns stable surrogate keys from the persisted registry
  6. Replaces the taxonomy and dictionary tables in one transaction

The key registry at ~/.config/avdb/registry.yaml is append-only:
keys assigned in earlier releases never change meaning, so data
loaded against an older release stays valid.

Examples:
  avdb taxa --checklist checklist.csv --dictionary dictionary.csv
  avdb taxa -c checklist.csv -d dictionary.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTaxa(cmd, checklistFile, dictionaryFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	taxaCmd.Flags().StringVarP(
		&checklistFile, "checklist", "c", "",
		"path to the curated checklist CSV",
	)
	taxaCmd.Flags().StringVarP(
		&dictionaryFile, "dictionary", "d", "",
		"path to the controlled vocabulary dictionary CSV",
	)

	return taxaCmd
}

func runTaxa(
	cmd *cobra.Command,
	checklistFile, dictionaryFile string,
) error {
	ctx := context.Background()

	var taxaOpts []config.Option
	if cmd.Flags().Changed("checklist") {
		taxaOpts = append(taxaOpts,
			config.OptTaxaChecklistFile(checklistFile))
	}
	if cmd.Flags().Changed("dictionary") {
		taxaOpts = append(taxaOpts,
			config.OptTaxaDictionaryFile(dictionaryFile))
	}
	if len(taxaOpts) > 0 {
		cfg.Update(taxaOpts)
	}

	if cfg.Taxa.ChecklistFile == "" || cfg.Taxa.DictionaryFile == "" {
		err := &gn.Error{
			Code: errcode.TaxaChecklistReadError,
			Msg: `Checklist and dictionary files are required

<em>How to fix:</em>
  avdb taxa --checklist checklist.csv --dictionary dictionary.csv`,
			Err: errors.New("checklist or dictionary file not set"),
		}
		return err
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
   Run <em>'avdb schema'</em> first to initialize the schema.`,
			Err: errors.New("cannot build taxonomy in empty database"),
		}
		return err
	}

	parsers := parserpool.NewPool(cfg.JobsNumber)
	defer parsers.Close()

	builder := iotaxa.NewBuilder(op, parsers)

	gn.Info("Building taxonomy release from checklist...")
	if err := builder.Build(ctx, cfg); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>avdb check</em>' to validate the survey datasets
	 - Run '<em>avdb load</em>' to import them
`)

	return nil
}
