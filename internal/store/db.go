// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/donate-hub/internal/config"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
)

const (
	connectRetries   = 4
	connectBaseDelay = 250 * time.Millisecond
)

// DB is the shared database handle of all repositories. It carries the
// driver name so that queries are rendered with the right placeholders.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	ids                *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewConnect opens a database/sql pool for cfg.Driver, then pings it,
// retrying with exponential backoff while the failure is classified as
// [Retryable].
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var classifier ErrorClassificator
	switch cfg.Driver {
	case config.DriverPostgres:
		classifier = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		classifier = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	if cfg.Driver == config.DriverSQLite {
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	backoff := retry.WithMaxRetries(connectRetries, retry.NewExponential(connectBaseDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingErr := conn.PingContext(ctx)
		if pingErr == nil {
			return nil
		}
		if classifier.Classify(pingErr) == Retryable {
			log.Warn().Err(pingErr).Str("func", "NewConnect").Msg("database is not ready, retrying")
			return retry.RetryableError(pingErr)
		}
		return pingErr
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	db := NewDB(conn, cfg.Driver, log)
	db.errorClassificator = classifier
	return db, nil
}

// NewDB wraps an already opened pool.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	classifier := ErrorClassificator(NewSQLiteErrorClassifier())
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		ids:                utils.NewUUIDGenerator(),
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// withTx runs fn inside a transaction that is committed when fn returns nil
// and rolled back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// sumMoney renders a NULL-safe SUM over a money column. SQLite keeps
// amounts as TEXT, so they are summed there as integer cents.
func (db *DB) sumMoney(column string) string {
	if db.driver == config.DriverPostgres {
		return fmt.Sprintf("COALESCE(SUM(%s), 0)", column)
	}
	return fmt.Sprintf("COALESCE(SUM(CAST(ROUND(%s * 100) AS INTEGER)), 0)", column)
}

// moneyFromSum turns a value aggregated by [DB.sumMoney] back into an amount.
func (db *DB) moneyFromSum(sum decimal.Decimal) decimal.Decimal {
	if db.driver == config.DriverPostgres {
		return sum
	}
	return sum.Shift(-2)
}

// forUpdate locks the selected rows until the transaction ends. SQLite runs
// on a single connection and has no row locks.
func (db *DB) forUpdate(builder sq.SelectBuilder) sq.SelectBuilder {
	if db.driver == config.DriverPostgres {
		return builder.Suffix("FOR UPDATE")
	}
	return builder
}

// now returns the current time in the precision stored by every backend.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

type rowScanner interface {
	Scan(dest ...any) error
}
