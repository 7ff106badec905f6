// Package storage persists committee records in SQLite. The schema is
// managed through embedded migrations; records are append-only.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mce/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InsertDisbursement stores a validated disbursement and returns it with
// its assigned identifier.
func (r *SQLiteRepository) InsertDisbursement(ctx context.Context, d core.Disbursement) (core.Disbursement, error) {
	d.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO disbursements
			(id, payee_name, address_line1, city, state, zip,
			 amount_cents, date, purpose, category, check_number, receipt_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.PayeeName, d.Address.Line1, d.Address.City, d.Address.State, d.Address.Zip,
		d.Amount.Cents, string(d.Date), d.Purpose, string(d.Category), d.CheckNumber, d.ReceiptRef,
	)
	if err != nil {
		return core.Disbursement{}, fmt.Errorf("insert disbursement: %w", err)
	}

	slog.InfoContext(ctx, "Disbursement saved",
		"id", d.ID,
		"payee", d.PayeeName,
		"amount_cents", d.Amount.Cents,
		"date", d.Date)

	return d, nil
}

// InsertContribution stores a validated contribution and returns it with
// its assigned identifier.
func (r *SQLiteRepository) InsertContribution(ctx context.Context, c core.Contribution) (core.Contribution, error) {
	c.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contributions
			(id, payer_name, address_line1, city, state, zip,
			 amount_cents, date, occupation, employer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.PayerName, c.Address.Line1, c.Address.City, c.Address.State, c.Address.Zip,
		c.Amount.Cents, string(c.Date), c.Occupation, c.Employer,
	)
	if err != nil {
		return core.Contribution{}, fmt.Errorf("insert contribution: %w", err)
	}

	slog.InfoContext(ctx, "Contribution saved",
		"id", c.ID,
		"payer", c.PayerName,
		"amount_cents", c.Amount.Cents,
		"date", c.Date)

	return c, nil
}

// DisbursementsInRange implements report.Store. Rows come back ordered by
// date then id so downstream output is reproducible.
func (r *SQLiteRepository) DisbursementsInRange(ctx context.Context, start, end core.Date) ([]core.Disbursement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, payee_name, address_line1, city, state, zip,
		       amount_cents, date, purpose, category, check_number, receipt_ref
		FROM disbursements
		WHERE date >= ? AND date <= ?
		ORDER BY date, id`,
		string(start), string(end),
	)
	if err != nil {
		return nil, fmt.Errorf("query disbursements: %w", err)
	}
	defer rows.Close()

	var out []core.Disbursement
	for rows.Next() {
		var d core.Disbursement
		var date, category string
		if err := rows.Scan(
			&d.ID, &d.PayeeName, &d.Address.Line1, &d.Address.City, &d.Address.State, &d.Address.Zip,
			&d.Amount.Cents, &date, &d.Purpose, &category, &d.CheckNumber, &d.ReceiptRef,
		); err != nil {
			return nil, fmt.Errorf("scan disbursement: %w", err)
		}
		d.Date = core.Date(date)
		d.Category = core.Category(category)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disbursements: %w", err)
	}

	return out, nil
}

// ContributionsInRange implements report.Store.
func (r *SQLiteRepository) ContributionsInRange(ctx context.Context, start, end core.Date) ([]core.Contribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, payer_name, address_line1, city, state, zip,
		       amount_cents, date, occupation, employer
		FROM contributions
		WHERE date >= ? AND date <= ?
		ORDER BY date, id`,
		string(start), string(end),
	)
	if err != nil {
		return nil, fmt.Errorf("query contributions: %w", err)
	}
	defer rows.Close()

	var out []core.Contribution
	for rows.Next() {
		var c core.Contribution
		var date string
		if err := rows.Scan(
			&c.ID, &c.PayerName, &c.Address.Line1, &c.Address.City, &c.Address.State, &c.Address.Zip,
			&c.Amount.Cents, &date, &c.Occupation, &c.Employer,
		); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		c.Date = core.Date(date)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributions: %w", err)
	}

	return out, nil
}

// AuditEntry is a persisted trail record, written by the audit worker.
type AuditEntry struct {
	ID            string
	EntityType    string
	EntityID      string
	Action        string
	PreviousValue string
	NewValue      string
	Source        string
	RecordedAt    time.Time
}

// InsertAuditEntry appends one audit trail record. Entries without an ID
// get one assigned.
func (r *SQLiteRepository) InsertAuditEntry(ctx context.Context, e AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_entries
			(id, entity_type, entity_id, action, previous_value, new_value, source, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.EntityType, e.EntityID, e.Action, e.PreviousValue, e.NewValue, e.Source,
		e.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

// AuditEntriesForEntity returns the recorded trail for one entity, oldest
// first.
func (r *SQLiteRepository) AuditEntriesForEntity(ctx context.Context, entityType, entityID string) ([]AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entity_type, entity_id, action, previous_value, new_value, source, recorded_at
		FROM audit_entries
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY recorded_at, id`,
		entityType, entityID,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var out []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var recordedAt string
		if err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.Action,
			&e.PreviousValue, &e.NewValue, &e.Source, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			e.RecordedAt = t
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}

	return out, nil
}
