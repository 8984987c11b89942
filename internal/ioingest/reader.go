// Package ioingest reads configured survey datasets from disk. A
// dataset is a directory of per-entity CSV tables or a single SQLite
// file exposing the same tables. Column names of older source schema
// generations are mapped onto the current ones during reading.
package ioingest

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Row is one table row keyed by canonical column name.
type Row map[string]string

// tableReader reads one named entity table from a dataset source.
type tableReader interface {
	// ReadTable returns the rows of a table, or ok=false when the
	// dataset does not carry that table at all.
	ReadTable(ctx context.Context, table string) (rows []Row, ok bool, err error)

	Close() error
}

// newTableReader picks the reader matching the dataset's parent path.
func newTableReader(parent string) (tableReader, error) {
	ext := strings.ToLower(filepath.Ext(parent))
	if ext == ".sqlite" || ext == ".db" {
		return newSqliteReader(parent)
	}
	return &csvReader{dir: parent}, nil
}

// csvReader reads per-entity CSV files from a dataset directory.
type csvReader struct {
	dir string
}

func (r *csvReader) ReadTable(
	ctx context.Context, table string,
) ([]Row, bool, error) {
	path := filepath.Join(r.dir, table+".csv")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, TableReadError(table, path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, true, nil
		}
		return nil, false, TableReadError(table, path, err)
	}

	var rows []Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, false, TableReadError(table, path, err)
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, TableReadError(table, path, err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, true, nil
}

func (r *csvReader) Close() error {
	return nil
}

// sqliteReader reads entity tables from a packaged SQLite file.
type sqliteReader struct {
	db   *sql.DB
	path string
}

func newSqliteReader(path string) (*sqliteReader, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, TableReadError("", path, err)
	}
	return &sqliteReader{db: db, path: path}, nil
}

func (r *sqliteReader) ReadTable(
	ctx context.Context, table string,
) ([]Row, bool, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name = ?`, table).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, TableReadError(table, r.path, err)
	}

	// Table names come from sqlite_master, not from user input.
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT * FROM %q", name))
	if err != nil {
		return nil, false, TableReadError(table, r.path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, false, TableReadError(table, r.path, err)
	}

	var res []Row
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, false, TableReadError(table, r.path, err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if vals[i].Valid {
				row[col] = vals[i].String
			}
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, false, TableReadError(table, r.path, err)
	}

	return res, true, nil
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}
