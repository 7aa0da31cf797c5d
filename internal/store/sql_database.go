package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const sqliteScheme = "sqlite://"

// DB is a database/sql pool bound to one dialect. It carries the matching
// squirrel placeholder format and driver error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database described by cfg.DSN. DSNs starting with
// "sqlite://" or "file:" use SQLite, everything else is handed to pgx.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn := ParseDSN(cfg.DSN)
	if dsn == "" {
		return nil, ErrUnsupportedDSN
	}

	switch dialect {
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dialect)
	}
}

// ParseDSN returns the dialect selected by dsn and the DSN to hand to the
// driver.
func ParseDSN(dsn string) (Dialect, string) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, sqliteScheme):
		return DialectSQLite, strings.TrimPrefix(dsn, sqliteScheme)
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn
	default:
		return DialectPostgres, dsn
	}
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	gooseDialect := migrations.DialectPostgres
	if db.dialect == DialectSQLite {
		gooseDialect = migrations.DialectSQLite
	}

	return migrations.Migrate(ctx, db.DB, gooseDialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// retryable reports whether err is a transient driver failure.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation reports whether err was raised by a unique index in
// either backend.
func isUniqueViolation(err error) bool {
	return postgresUniqueViolation(err) || sqliteUniqueViolation(err)
}
