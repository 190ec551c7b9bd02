package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/infra/targets"
)

// DefaultSchema is the schema name SQLite gives the main database.
const DefaultSchema = "main"

type tableRef struct {
	schema string
	table  string
}

// Session introspects and writes a SQLite database. Object ids are the
// rowid of the table in <schema>.sqlite_master.
type Session struct {
	db *sql.DB

	mu     sync.Mutex
	tables map[domain.ObjectID]tableRef
	nextID domain.ObjectID
}

// Open opens path with a single connection so that attached databases stay
// visible to every statement.
func Open(path string) (*Session, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSession(db), nil
}

func NewSession(db *sql.DB) *Session {
	return &Session{
		db:     db,
		tables: make(map[domain.ObjectID]tableRef),
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

// TableOID expects schema to be a validated identifier; it is interpolated.
// A schema that is not an attached database is reported as not found.
func (s *Session) TableOID(ctx context.Context, schema, table string) (domain.ObjectID, bool, error) {
	attached, err := s.schemaAttached(ctx, schema)
	if err != nil {
		return 0, false, err
	}
	if !attached {
		return 0, false, nil
	}

	query, args, err := squirrel.
		Select("rowid").
		From(schema + ".sqlite_master").
		Where(squirrel.Eq{"type": "table", "name": table}).
		ToSql()
	if err != nil {
		return 0, false, err
	}

	var rowid int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&rowid)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup table %s.%s: %w", schema, table, err)
	}

	// rowids are only unique per database file, so hand out session ids.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.tables[s.nextID] = tableRef{schema: schema, table: table}
	return s.nextID, true, nil
}

func (s *Session) schemaAttached(ctx context.Context, schema string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From("pragma_database_list").
		Where(squirrel.Eq{"name": schema}).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup schema %s: %w", schema, err)
	}
	return true, nil
}

func (s *Session) TableColumns(ctx context.Context, oid domain.ObjectID) ([]domain.ColumnInfo, error) {
	s.mu.Lock()
	ref, ok := s.tables[oid]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown object id %d", oid)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, type FROM pragma_table_info(?, ?) ORDER BY cid`, ref.table, ref.schema)
	if err != nil {
		return nil, fmt.Errorf("list columns of %s.%s: %w", ref.schema, ref.table, err)
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

// Placeholder ignores the column type: SQLite has no cast syntax on binds.
func (s *Session) Placeholder(position int, columnType string) string {
	return "?"
}
