package session

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/infra/targets/postgres"
	"github.com/mmrzaf/tablefaker/internal/infra/targets/sqlite"
)

// Open connects to dsn with the named driver: postgres (lib/pq), pgx
// (pgx stdlib) or sqlite3.
func Open(driver, dsn string) (Session, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		return openPostgres("postgres", dsn)
	case "pgx":
		return openPostgres("pgx", dsn)
	case "sqlite", "sqlite3":
		s, err := sqlite.Open(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}
}

// DefaultSchema is the schema bare table names resolve to on driver.
func DefaultSchema(driver string) string {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return sqlite.DefaultSchema
	default:
		return domain.DefaultSchema
	}
}

func openPostgres(driverName, dsn string) (Session, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return postgres.NewSession(db), nil
}
