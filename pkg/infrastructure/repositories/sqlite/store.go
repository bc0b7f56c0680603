// Package sqlite persists contracts and production assignments to a local
// SQLite database so a planning session survives restarts.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/tycoontools/gtplan/pkg/domain/entities"
	"github.com/tycoontools/gtplan/pkg/domain/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS contracts (
	id                TEXT PRIMARY KEY,
	product           TEXT NOT NULL DEFAULT '',
	destination       TEXT NOT NULL DEFAULT '',
	client            TEXT NOT NULL DEFAULT '',
	units_per_day     TEXT NOT NULL DEFAULT '0',
	fulfilled         INTEGER NOT NULL DEFAULT 0,
	last_fulfilled_at TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS make_rows (
	material TEXT PRIMARY KEY,
	base     TEXT NOT NULL DEFAULT ''
);
`

// Store backs the contract and make repositories with a SQLite database.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Verify interface compliance
var (
	_ repositories.ContractRepository = (*Store)(nil)
	_ repositories.MakeRepository     = (*Store)(nil)
)

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContract(row rowScanner) (*entities.Contract, error) {
	var c entities.Contract
	var unitsPerDay, lastFulfilledAt string
	var fulfilled int
	if err := row.Scan(&c.ID, &c.Product, &c.Destination, &c.Client, &unitsPerDay, &fulfilled, &lastFulfilledAt); err != nil {
		return nil, err
	}
	rate, err := decimal.NewFromString(unitsPerDay)
	if err != nil {
		return nil, fmt.Errorf("contract %s: bad units_per_day %q: %w", c.ID, unitsPerDay, err)
	}
	c.UnitsPerDay = rate
	c.Fulfilled = fulfilled != 0
	if lastFulfilledAt != "" {
		c.LastFulfilledAt, _ = time.Parse(time.RFC3339Nano, lastFulfilledAt)
	}
	return &c, nil
}

// SaveContract upserts a contract by id
func (s *Store) SaveContract(contract *entities.Contract) error {
	if contract == nil {
		return fmt.Errorf("cannot save nil contract")
	}
	if contract.ID == "" {
		return fmt.Errorf("cannot save contract with empty id")
	}
	fulfilled := 0
	if contract.Fulfilled {
		fulfilled = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO contracts (id, product, destination, client, units_per_day, fulfilled, last_fulfilled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		contract.ID,
		contract.Product,
		contract.Destination,
		contract.Client,
		contract.UnitsPerDay.String(),
		fulfilled,
		timeToString(contract.LastFulfilledAt),
	)
	if err != nil {
		return fmt.Errorf("save contract %s: %w", contract.ID, err)
	}
	return nil
}

// GetContract returns the contract with the given id
func (s *Store) GetContract(id string) (*entities.Contract, error) {
	row := s.db.QueryRow(`SELECT id, product, destination, client, units_per_day, fulfilled, last_fulfilled_at
		FROM contracts WHERE id = ?`, id)
	contract, err := scanContract(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contract not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get contract %s: %w", id, err)
	}
	return contract, nil
}

// GetAllContracts returns all contracts ordered by id
func (s *Store) GetAllContracts() ([]*entities.Contract, error) {
	rows, err := s.db.Query(`SELECT id, product, destination, client, units_per_day, fulfilled, last_fulfilled_at
		FROM contracts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*entities.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

// DeleteContract removes the contract with the given id
func (s *Store) DeleteContract(id string) error {
	res, err := s.db.Exec(`DELETE FROM contracts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contract %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("contract not found: %s", id)
	}
	return nil
}

// LoadContracts upserts a batch of contracts
func (s *Store) LoadContracts(contracts []*entities.Contract) error {
	for _, contract := range contracts {
		if err := s.SaveContract(contract); err != nil {
			return err
		}
	}
	return nil
}

// LoadMakeRows upserts a batch of production assignments
func (s *Store) LoadMakeRows(rows []*entities.MakeRow) error {
	for _, row := range rows {
		if err := s.SaveMakeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// SaveMakeRow upserts the production assignment for a material
func (s *Store) SaveMakeRow(row *entities.MakeRow) error {
	if row == nil {
		return fmt.Errorf("cannot save nil make row")
	}
	if row.Material == "" {
		return fmt.Errorf("cannot save make row with empty material")
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO make_rows (material, base) VALUES (?, ?)`,
		row.Material, row.Base)
	if err != nil {
		return fmt.Errorf("save make row %s: %w", row.Material, err)
	}
	return nil
}

// GetMakeRow returns the production assignment for a material
func (s *Store) GetMakeRow(material string) (*entities.MakeRow, error) {
	var row entities.MakeRow
	err := s.db.QueryRow(`SELECT material, base FROM make_rows WHERE material = ?`, material).
		Scan(&row.Material, &row.Base)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("make row not found: %s", material)
	}
	if err != nil {
		return nil, fmt.Errorf("get make row %s: %w", material, err)
	}
	return &row, nil
}

// GetAllMakeRows returns all production assignments ordered by material
func (s *Store) GetAllMakeRows() ([]*entities.MakeRow, error) {
	rows, err := s.db.Query(`SELECT material, base FROM make_rows ORDER BY material`)
	if err != nil {
		return nil, fmt.Errorf("list make rows: %w", err)
	}
	defer rows.Close()

	var result []*entities.MakeRow
	for rows.Next() {
		var row entities.MakeRow
		if err := rows.Scan(&row.Material, &row.Base); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}

// DeleteMakeRow removes the production assignment for a material
func (s *Store) DeleteMakeRow(material string) error {
	res, err := s.db.Exec(`DELETE FROM make_rows WHERE material = ?`, material)
	if err != nil {
		return fmt.Errorf("delete make row %s: %w", material, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("make row not found: %s", material)
	}
	return nil
}
