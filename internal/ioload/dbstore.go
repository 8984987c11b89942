package ioload

import (
	"context"

	"github.com/accs-uaa/avdb/pkg/taxa"
	"github.com/accs-uaa/avdb/pkg/vocab"
	"github.com/jackc/pgx/v5/pgxpool"
)

// loadStore reads the taxonomy back from the database into a concept
// store for name resolution. Only the columns resolution needs come
// back.
func loadStore(
	ctx context.Context, pool *pgxpool.Pool,
) (*taxa.Store, error) {
	rows, err := pool.Query(ctx, `
		SELECT a.taxon_code, a.taxon_name, s.taxon_status,
		       a.taxon_accepted_code
		FROM taxon_all a
		JOIN taxon_status s USING (taxon_status_id)
	`)
	if err != nil {
		return nil, TableError("taxon_all", err)
	}
	defer rows.Close()

	var concepts []*taxa.Concept
	for rows.Next() {
		c := &taxa.Concept{}
		err := rows.Scan(&c.Code, &c.Name, &c.Status, &c.AcceptedCode)
		if err != nil {
			return nil, TableError("taxon_all", err)
		}
		concepts = append(concepts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, TableError("taxon_all", err)
	}

	if len(concepts) == 0 {
		return nil, EmptyTaxonomyError()
	}
	return taxa.FromConcepts(concepts), nil
}

// loadDictionary reads the controlled vocabularies back from the
// database, returning both the term sets for validation and the
// surrogate keys for row building.
func loadDictionary(
	ctx context.Context, pool *pgxpool.Pool,
) (*vocab.Normalizer, dictKeys, error) {
	rows, err := pool.Query(ctx, `
		SELECT dictionary_domain, dictionary_id, dictionary_label
		FROM dictionary
	`)
	if err != nil {
		return nil, nil, TableError("dictionary", err)
	}
	defer rows.Close()

	domains := make(map[string][]string)
	keys := make(dictKeys)
	for rows.Next() {
		var domain, label string
		var id int
		if err := rows.Scan(&domain, &id, &label); err != nil {
			return nil, nil, TableError("dictionary", err)
		}
		domains[domain] = append(domains[domain], label)
		if keys[domain] == nil {
			keys[domain] = make(map[string]int)
		}
		keys[domain][label] = id
	}
	if err := rows.Err(); err != nil {
		return nil, nil, TableError("dictionary", err)
	}

	if len(domains) == 0 {
		return nil, nil, EmptyTaxonomyError()
	}

	norm := vocab.NewNormalizer(vocab.DefaultPolicy, domains)
	return norm, keys, nil
}
