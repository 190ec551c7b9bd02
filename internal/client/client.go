// Package client generates fake rows for one table and inserts them.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/engine"
	"github.com/mmrzaf/tablefaker/internal/logging"
	"github.com/mmrzaf/tablefaker/internal/rowdef"
	"github.com/mmrzaf/tablefaker/internal/session"
)

// Client owns the row definition of one schema-qualified table. It must be
// initialized against a session before rows can be generated.
type Client struct {
	engine  engine.Engine
	schema  string
	table   string
	session session.Session
	rowDef  *rowdef.RowDefinition
	logger  *logging.Logger
}

type Option func(*Client)

func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient does not touch the database. An empty schema means "public".
func NewClient(e engine.Engine, table, schema string, opts ...Option) *Client {
	if schema == "" {
		schema = domain.DefaultSchema
	}
	c := &Client{
		engine: e,
		schema: schema,
		table:  table,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Identifier() string {
	return c.schema + "." + c.table
}

func (c *Client) Schema() string { return c.schema }
func (c *Client) Table() string  { return c.table }

// Initialize reads the table's columns and builds the default row
// definition from their types.
func (c *Client) Initialize(ctx context.Context, sess session.Session) error {
	oid, found, err := sess.TableOID(ctx, c.schema, c.table)
	if err != nil {
		return fmt.Errorf("initialize %s: %w", c.Identifier(), err)
	}
	if !found {
		return &domain.TableNotFoundError{Schema: c.schema, Table: c.table}
	}

	columns, err := sess.TableColumns(ctx, oid)
	if err != nil {
		return fmt.Errorf("initialize %s: %w", c.Identifier(), err)
	}

	c.session = sess
	c.rowDef = rowdef.New(columns)
	c.logger.Debugw("client.initialized", map[string]any{
		"table":   c.Identifier(),
		"oid":     int64(oid),
		"columns": len(columns),
	})
	return nil
}

// RowDefinition returns the definition callers customize before generating.
// It is nil until Initialize succeeds.
func (c *Client) RowDefinition() *rowdef.RowDefinition {
	return c.rowDef
}

// Generate builds count rows in memory. Columns follow the row definition
// order; columns without a rule are left out.
func (c *Client) Generate(count int) ([]domain.Row, error) {
	if c.rowDef == nil {
		return nil, fmt.Errorf("%s: %w", c.Identifier(), domain.ErrNotInitialized)
	}
	if count < 0 {
		return nil, fmt.Errorf("row count must not be negative, got %d", count)
	}

	rules := c.rowDef.Definition()
	rows := make([]domain.Row, 0, count)
	for i := 0; i < count; i++ {
		row := make(domain.Row, len(rules))
		for j, nr := range rules {
			v, err := nr.Rule.Evaluate(c.engine)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d, column '%s': %w", c.Identifier(), i, nr.Name, err)
			}
			row[j] = domain.Field{Name: nr.Name, Value: v}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// InsertSQL renders the insert statement for the current definition.
func (c *Client) InsertSQL() (string, error) {
	if c.rowDef == nil {
		return "", fmt.Errorf("%s: %w", c.Identifier(), domain.ErrNotInitialized)
	}
	names := c.rowDef.Names()
	if len(names) == 0 {
		return "", errors.New("row definition has no columns")
	}

	columns := make([]string, len(names))
	placeholders := make([]string, len(names))
	for i, name := range names {
		typ, _ := c.rowDef.Type(name)
		columns[i] = pq.QuoteIdentifier(name)
		placeholders[i] = c.session.Placeholder(i+1, typ)
	}

	// Quoted so that mixed-case names keep their case.
	return fmt.Sprintf("insert into %s.%s (%s) values (%s) returning *",
		pq.QuoteIdentifier(c.schema), pq.QuoteIdentifier(c.table),
		strings.Join(columns, ", "), strings.Join(placeholders, ", ")), nil
}

// Save generates count rows and inserts them one statement per row,
// returning the record each insert returned. Executor errors are returned
// as they are; rows inserted before the failure stay inserted.
func (c *Client) Save(ctx context.Context, count int) ([]domain.Row, error) {
	rows, err := c.Generate(count)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Row{}, nil
	}

	query, err := c.InsertSQL()
	if err != nil {
		return nil, err
	}

	saved := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		record, err := c.session.Execute(ctx, query, row.Values())
		if err != nil {
			return saved, err
		}
		saved = append(saved, record)
	}

	c.logger.Debugw("client.saved", map[string]any{
		"table": c.Identifier(),
		"rows":  len(saved),
	})
	return saved, nil
}
