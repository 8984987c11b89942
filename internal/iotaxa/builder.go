// Package iotaxa implements the avdb.TaxaBuilder interface. It reads
// the comprehensive checklist and controlled vocabulary sources,
// builds the taxon concept store, and replaces the taxonomy and
// dictionary tables of the database in one transaction.
package iotaxa

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/accs-uaa/avdb/pkg/avdb"
	"github.com/accs-uaa/avdb/pkg/config"
	"github.com/accs-uaa/avdb/pkg/db"
	"github.com/accs-uaa/avdb/pkg/parserpool"
	"github.com/accs-uaa/avdb/pkg/registry"
	"github.com/accs-uaa/avdb/pkg/schema"
	"github.com/accs-uaa/avdb/pkg/taxa"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
)

// Registry domains of the taxonomy constraint tables.
const (
	domAuthor   = "taxon_author"
	domCategory = "taxon_category"
	domFamily   = "taxon_family"
	domHabit    = "taxon_habit"
	domStatus   = "taxon_status"
	domLevel    = "taxon_level"
	domSource   = "taxon_source"
)

// builder implements avdb.TaxaBuilder.
type builder struct {
	operator db.Operator
	parsers  parserpool.Pool
}

// NewBuilder creates a new TaxaBuilder.
func NewBuilder(
	op db.Operator, parsers parserpool.Pool,
) avdb.TaxaBuilder {
	return &builder{operator: op, parsers: parsers}
}

// Build reads the checklist and dictionary sources, constructs the
// concept store, assigns registry keys, and replaces the taxonomy and
// dictionary tables.
func (b *builder) Build(
	ctx context.Context, cfg *config.Config,
) error {
	start := time.Now()

	rows, err := readChecklist(cfg.Taxa.ChecklistFile)
	if err != nil {
		return err
	}
	dict, err := readDictionary(cfg.Taxa.DictionaryFile)
	if err != nil {
		return err
	}

	store, err := taxa.Build(rows, b.parsers.Canonical)
	if err != nil {
		return err
	}
	slog.Info("Built taxon concept store",
		"concepts", humanize.Comma(int64(store.Len())),
		"accepted", humanize.Comma(int64(len(store.Accepted()))),
	)

	reg, err := b.loadRegistry(cfg)
	if err != nil {
		return err
	}
	b.ensureKeys(reg, store, dict)
	if err := b.saveRegistry(cfg, reg); err != nil {
		return err
	}

	if err := b.replaceTables(ctx, store, dict, reg); err != nil {
		return err
	}

	gn.Info("Taxonomy build complete: <em>%s</em> concepts in %s",
		humanize.Comma(int64(store.Len())),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// loadRegistry reads the persisted key registry, or starts a fresh
// one on first build.
func (b *builder) loadRegistry(
	cfg *config.Config,
) (*registry.Registry, error) {
	path := config.RegistryFilePath(cfg.HomeDir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return registry.New(), nil
	}
	if err != nil {
		return nil, RegistryFileError(path, err)
	}
	return registry.Parse(data)
}

func (b *builder) saveRegistry(
	cfg *config.Config, reg *registry.Registry,
) error {
	data, err := reg.Bytes()
	if err != nil {
		return err
	}
	path := config.RegistryFilePath(cfg.HomeDir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return RegistryFileError(path, err)
	}
	return nil
}

// ensureKeys registers every constraint value and dictionary term.
// Existing keys never move; new values append.
func (b *builder) ensureKeys(
	reg *registry.Registry,
	store *taxa.Store,
	dict map[string][]string,
) {
	var authors, categories, families []string
	var habits, statuses, levels, sources []string
	for _, c := range store.All() {
		authors = append(authors, c.Author)
		categories = append(categories, c.Category)
		families = append(families, c.Family)
		habits = append(habits, c.Habit)
		statuses = append(statuses, c.Status)
		levels = append(levels, c.Level)
		sources = append(sources, c.Source)
	}

	reg.Ensure(domAuthor, authors)
	reg.Ensure(domCategory, categories)
	reg.Ensure(domFamily, families)
	reg.Ensure(domHabit, habits)
	reg.Ensure(domStatus, statuses)
	reg.Ensure(domLevel, levels)
	reg.Ensure(domSource, sources)

	for domain, terms := range dict {
		reg.Ensure(domain, terms)
	}
}

// replaceTables rewrites the taxonomy and dictionary tables inside
// one transaction. Old rows clear in reverse dependency order, new
// rows insert in forward order.
func (b *builder) replaceTables(
	ctx context.Context,
	store *taxa.Store,
	dict map[string][]string,
	reg *registry.Registry,
) error {
	pool := b.operator.Pool()
	if pool == nil {
		return InsertError("taxonomy", errNotConnected)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return InsertError("taxonomy", err)
	}
	defer tx.Rollback(ctx)

	order := schema.TaxonomyWriteOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if _, err := tx.Exec(
			ctx, "DELETE FROM "+order[i],
		); err != nil {
			return InsertError(order[i], err)
		}
	}
	if _, err := tx.Exec(ctx, "DELETE FROM dictionary"); err != nil {
		return InsertError("dictionary", err)
	}

	if err := b.insertConstraints(ctx, tx, reg); err != nil {
		return err
	}
	if err := b.insertHierarchy(ctx, tx, store, reg); err != nil {
		return err
	}
	if err := b.insertAccepted(ctx, tx, store, reg); err != nil {
		return err
	}
	if err := b.insertAll(ctx, tx, store, reg); err != nil {
		return err
	}
	if err := b.insertDictionary(ctx, tx, dict, reg); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return InsertError("taxonomy", err)
	}
	return nil
}

// insertConstraints fills the small lookup tables from the registry,
// so surrogate keys in the database always match the registry.
func (b *builder) insertConstraints(
	ctx context.Context, tx pgx.Tx, reg *registry.Registry,
) error {
	tables := []struct {
		table, domain, idCol, termCol string
	}{
		{"taxon_author", domAuthor, "taxon_author_id", "taxon_author"},
		{"taxon_category", domCategory, "taxon_category_id", "taxon_category"},
		{"taxon_family", domFamily, "taxon_family_id", "taxon_family"},
		{"taxon_habit", domHabit, "taxon_habit_id", "taxon_habit"},
		{"taxon_status", domStatus, "taxon_status_id", "taxon_status"},
		{"taxon_level", domLevel, "taxon_level_id", "taxon_level"},
		{"taxon_source", domSource, "taxon_source_id", "taxon_source"},
	}

	for _, t := range tables {
		rows := make([][]any, 0)
		for i, term := range reg.Terms(t.domain) {
			rows = append(rows, []any{i + 1, term})
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{t.table},
			[]string{t.idCol, t.termCol},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return InsertError(t.table, err)
		}
	}
	return nil
}

func (b *builder) insertHierarchy(
	ctx context.Context, tx pgx.Tx,
	store *taxa.Store, reg *registry.Registry,
) error {
	entries, err := store.Hierarchy(b.parsers.Canonical)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		familyID, _ := reg.ID(domFamily, e.Family)
		categoryID, _ := reg.ID(domCategory, e.Category)
		rows = append(rows, []any{e.GenusCode, familyID, categoryID})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"taxon_hierarchy"},
		[]string{"genus_code", "taxon_family_id", "taxon_category_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return InsertError("taxon_hierarchy", err)
	}
	return nil
}

func (b *builder) insertAccepted(
	ctx context.Context, tx pgx.Tx,
	store *taxa.Store, reg *registry.Registry,
) error {
	accepted := store.Accepted()
	rows := make([][]any, 0, len(accepted))
	for _, c := range accepted {
		anchor, err := store.GenusAnchor(c, b.parsers.Canonical)
		if err != nil {
			return err
		}
		sourceID, _ := reg.ID(domSource, c.Source)
		levelID, _ := reg.ID(domLevel, c.Level)
		habitID, _ := reg.ID(domHabit, c.Habit)

		var link any
		if c.Link != "" {
			link = c.Link
		}

		rows = append(rows, []any{
			c.Code, anchor.Code, sourceID, link,
			levelID, habitID, c.Native, c.NonNative,
		})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"taxon_accepted"},
		[]string{
			"taxon_accepted_code", "genus_code", "taxon_source_id",
			"taxon_link", "taxon_level_id", "taxon_habit_id",
			"taxon_native", "taxon_non_native",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return InsertError("taxon_accepted", err)
	}
	return nil
}

func (b *builder) insertAll(
	ctx context.Context, tx pgx.Tx,
	store *taxa.Store, reg *registry.Registry,
) error {
	all := store.All()
	rows := make([][]any, 0, len(all))
	for _, c := range all {
		authorID, _ := reg.ID(domAuthor, c.Author)
		statusID, _ := reg.ID(domStatus, c.Status)
		rows = append(rows, []any{
			c.Code, c.Name, authorID, statusID, c.AcceptedCode,
		})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"taxon_all"},
		[]string{
			"taxon_code", "taxon_name", "taxon_author_id",
			"taxon_status_id", "taxon_accepted_code",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return InsertError("taxon_all", err)
	}
	return nil
}

func (b *builder) insertDictionary(
	ctx context.Context, tx pgx.Tx,
	dict map[string][]string, reg *registry.Registry,
) error {
	var rows [][]any
	for domain := range dict {
		for i, term := range reg.Terms(domain) {
			rows = append(rows, []any{domain, i + 1, term})
		}
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"dictionary"},
		[]string{
			"dictionary_domain", "dictionary_id", "dictionary_label",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return InsertError("dictionary", err)
	}
	return nil
}
