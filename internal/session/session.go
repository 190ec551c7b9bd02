// Package session defines the database collaborators a client talks to.
package session

import (
	"context"

	"github.com/mmrzaf/tablefaker/internal/domain"
)

type Introspector interface {
	// TableOID reports found=false when the table does not exist.
	TableOID(ctx context.Context, schema, table string) (oid domain.ObjectID, found bool, err error)
	TableColumns(ctx context.Context, oid domain.ObjectID) ([]domain.ColumnInfo, error)
}

type Executor interface {
	// Execute runs a statement with positional parameters and returns its
	// first record, or nil when the statement returns nothing.
	Execute(ctx context.Context, query string, params []interface{}) (domain.Row, error)
}

type Session interface {
	Introspector
	Executor
	// Placeholder renders the bind marker for the 1-based position of a
	// column with the given declared type.
	Placeholder(position int, columnType string) string
	Close() error
}
