package records

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/lib/pq"
)

// listSuffix marks a column alias holding a Postgres text array, e.g.
// "individuals[]".
const listSuffix = "[]"

// scanRecords turns every row into a projection.MapRecord. Dotted column
// aliases ("family.project.guid") become nested records; a nested record
// whose columns are all NULL (an unmatched LEFT JOIN) reads as nil.
func scanRecords(rows *sql.Rows) ([]projection.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	out := make([]projection.Record, 0, 16)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		rec, err := buildRecord(cols, vals)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func buildRecord(cols []string, vals []any) (projection.MapRecord, error) {
	rec := projection.MapRecord{}
	for i, col := range cols {
		name, v := col, vals[i]

		if strings.HasSuffix(name, listSuffix) {
			name = strings.TrimSuffix(name, listSuffix)
			var arr pq.StringArray
			if err := arr.Scan(v); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrBadColumn, col, err)
			}
			list := []string(arr)
			if list == nil {
				list = []string{}
			}
			v = list
		} else if b, ok := v.([]byte); ok {
			v = string(b)
		}

		path, err := projection.ParsePath(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadColumn, col)
		}
		if err := setPath(rec, path, v); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadColumn, col, err)
		}
	}
	collapseNulls(rec)
	return rec, nil
}

func setPath(rec projection.MapRecord, path []string, v any) error {
	for _, step := range path[:len(path)-1] {
		cur, exists := rec[step]
		next, ok := cur.(projection.MapRecord)
		if exists && !ok {
			return fmt.Errorf("%s is both a value and a relation", step)
		}
		if !ok {
			next = projection.MapRecord{}
			rec[step] = next
		}
		rec = next
	}
	leaf := path[len(path)-1]
	if _, ok := rec[leaf].(projection.MapRecord); ok {
		return fmt.Errorf("%s is both a value and a relation", leaf)
	}
	rec[leaf] = v
	return nil
}

// collapseNulls replaces nested records with only NULL leaves by nil and
// reports whether rec itself is all NULL.
func collapseNulls(rec projection.MapRecord) bool {
	empty := true
	for k, v := range rec {
		if nested, ok := v.(projection.MapRecord); ok {
			if collapseNulls(nested) {
				rec[k] = nil
				continue
			}
			empty = false
			continue
		}
		if v != nil {
			empty = false
		}
	}
	return empty
}
