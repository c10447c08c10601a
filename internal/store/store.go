// Package store persists financial snapshots and the investor directory
// in a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"runway/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DataDir returns the platform-appropriate data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "runway")
}

// DefaultPath returns the full path to the default database.
func DefaultPath() string {
	return filepath.Join(DataDir(), "runway.db")
}

// Snapshot is one persisted set of inputs with its save time.
type Snapshot struct {
	ID      int64
	SavedAt time.Time
	Inputs  model.Inputs
}

// SaveSnapshot appends the current inputs as a new snapshot.
func (s *Store) SaveSnapshot(in model.Inputs) error {
	_, err := s.db.Exec(`INSERT INTO snapshots
		(saved_at, cash_balance, monthly_revenue, monthly_expenses,
		 b2b_total, b2b_new, b2b_cac, b2b_churn_rate,
		 b2c_total, b2c_new, b2c_cac, b2c_churn_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		in.CashBalance, in.MonthlyRevenue, in.MonthlyExpenses,
		in.B2B.Total, in.B2B.New, in.B2B.CAC, in.B2B.ChurnRate,
		in.B2C.Total, in.B2C.New, in.B2C.CAC, in.B2C.ChurnRate,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently saved snapshot, or nil when
// none has been saved yet.
func (s *Store) LatestSnapshot() (*Snapshot, error) {
	row := s.db.QueryRow(`SELECT id, saved_at, cash_balance, monthly_revenue, monthly_expenses,
		b2b_total, b2b_new, b2b_cac, b2b_churn_rate,
		b2c_total, b2c_new, b2c_cac, b2c_churn_rate
		FROM snapshots ORDER BY saved_at DESC, id DESC LIMIT 1`)

	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns up to limit snapshots, newest first.
func (s *Store) ListSnapshots(limit int) ([]Snapshot, error) {
	rows, err := s.db.Query(`SELECT id, saved_at, cash_balance, monthly_revenue, monthly_expenses,
		b2b_total, b2b_new, b2b_cac, b2b_churn_rate,
		b2c_total, b2c_new, b2c_cac, b2c_churn_rate
		FROM snapshots ORDER BY saved_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *snap)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var snap Snapshot
	var savedAt string
	err := row.Scan(&snap.ID, &savedAt,
		&snap.Inputs.CashBalance, &snap.Inputs.MonthlyRevenue, &snap.Inputs.MonthlyExpenses,
		&snap.Inputs.B2B.Total, &snap.Inputs.B2B.New, &snap.Inputs.B2B.CAC, &snap.Inputs.B2B.ChurnRate,
		&snap.Inputs.B2C.Total, &snap.Inputs.B2C.New, &snap.Inputs.B2C.CAC, &snap.Inputs.B2C.ChurnRate,
	)
	if err != nil {
		return nil, err
	}
	snap.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
	snap.Inputs.B2B.Label = "B2B"
	snap.Inputs.B2C.Label = "B2C"
	return &snap, nil
}

// ReplaceInvestors swaps the investor directory for the given list, in
// one transaction. Re-importing the same export is idempotent.
func (s *Store) ReplaceInvestors(investors []model.Investor) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM investors"); err != nil {
		return fmt.Errorf("clearing investors: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO investors
		(firm_name, type, location, website, office_contact, portfolio_examples, investment_focus)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, inv := range investors {
		if _, err := stmt.Exec(inv.FirmName, inv.Type, inv.Location, inv.Website,
			inv.OfficeContact, inv.Portfolio, inv.Focus); err != nil {
			return fmt.Errorf("inserting investor %q: %w", inv.FirmName, err)
		}
	}
	return tx.Commit()
}

// ListInvestors returns investors ordered by firm name, optionally
// filtered by type.
func (s *Store) ListInvestors(typeFilter string) ([]model.Investor, error) {
	query := `SELECT firm_name, type, location, website, office_contact, portfolio_examples, investment_focus
		FROM investors`
	args := []any{}
	if typeFilter != "" {
		query += " WHERE type = ?"
		args = append(args, typeFilter)
	}
	query += " ORDER BY firm_name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Investor
	for rows.Next() {
		var inv model.Investor
		if err := rows.Scan(&inv.FirmName, &inv.Type, &inv.Location, &inv.Website,
			&inv.OfficeContact, &inv.Portfolio, &inv.Focus); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// InvestorCount returns the number of stored investors.
func (s *Store) InvestorCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM investors").Scan(&n)
	return n, err
}
