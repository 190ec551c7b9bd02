package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/infra/targets"
)

// Session introspects and writes a Postgres database through database/sql.
// It works with both the lib/pq and the pgx stdlib drivers.
type Session struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func NewSession(db *sql.DB) *Session {
	return &Session{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (s *Session) DB() *sql.DB {
	return s.db
}

func (s *Session) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Session) TableOID(ctx context.Context, schema, table string) (domain.ObjectID, bool, error) {
	query, args, err := s.qb.
		Select("c.oid").
		From("pg_catalog.pg_class c").
		Join("pg_catalog.pg_namespace n ON n.oid = c.relnamespace").
		Where(squirrel.Eq{"n.nspname": schema, "c.relname": table}).
		Where("c.relkind IN ('r', 'p')").
		ToSql()
	if err != nil {
		return 0, false, err
	}

	var oid int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&oid)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup table %s.%s: %w", schema, table, err)
	}
	return domain.ObjectID(oid), true, nil
}

// TableColumns lists the live columns of a table with their internal type
// names (int4, varchar, timestamptz, ...).
func (s *Session) TableColumns(ctx context.Context, oid domain.ObjectID) ([]domain.ColumnInfo, error) {
	query, args, err := s.qb.
		Select("a.attname", "t.typname").
		From("pg_catalog.pg_attribute a").
		Join("pg_catalog.pg_type t ON t.oid = a.atttypid").
		Where(squirrel.Eq{"a.attrelid": int64(oid)}).
		Where("a.attnum > 0").
		Where("NOT a.attisdropped").
		OrderBy("a.attnum").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list columns of %d: %w", oid, err)
	}
	defer rows.Close()

	var columns []domain.ColumnInfo
	for rows.Next() {
		var col domain.ColumnInfo
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func (s *Session) Execute(ctx context.Context, query string, params []interface{}) (domain.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	return targets.FirstRecord(rows)
}

func (s *Session) Placeholder(position int, columnType string) string {
	return fmt.Sprintf("$%d::%s", position, columnType)
}
