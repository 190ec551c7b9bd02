// Package targets holds helpers shared by the database targets.
package targets

import (
	"database/sql"

	"github.com/mmrzaf/tablefaker/internal/domain"
)

// FirstRecord reads the first row of rows and closes it. Byte slices are
// returned as strings.
func FirstRecord(rows *sql.Rows) (domain.Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, rows.Err()
	}

	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	record := make(domain.Row, len(columns))
	for i, name := range columns {
		v := values[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		record[i] = domain.Field{Name: name, Value: v}
	}
	return record, rows.Err()
}
