// Package mysql implements the relational store for indexed staking
// rewards, identities, and the UTXO eligibility projection.
package mysql

import (
	"errors"
	"fmt"
	"time"

	"database/sql"

	"github.com/go-sql-driver/mysql"
)

const fkViolationErrNumber = 1452

// ErrIdentityMissing reports a reward upsert that hit the foreign key on
// identities. The caller is expected to force identity creation and retry
// the block exactly once.
var ErrIdentityMissing = errors.New("identity row missing for reward")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository is the MySQL-backed persistence layer.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// New opens a connection pool for the given DSN. ParseTime is forced on so
// DATETIME columns scan into time.Time.
func New(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("mysql dsn is required")
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql connection: %w", err)
	}
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(time.Hour)

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

// wrapConstraintErr maps foreign-key violations onto ErrIdentityMissing so
// callers can distinguish them from fatal persistence failures.
func wrapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == fkViolationErrNumber {
		return fmt.Errorf("%w: %v", ErrIdentityMissing, err)
	}
	return err
}
