// Package sqlite persists calculations in a SQLite database file
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ayankousky/interest-calculator/internal/domain"

	// register the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Factory implements a repository factory using SQLite
type Factory struct {
	db *sql.DB
}

// NewFactory opens (or creates) a SQLite database file (dsn)
func NewFactory(dsn string) (*Factory, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	return &Factory{db: db}, nil
}

// GetCalculationRepository returns a CalculationRepository instance,
// creating its table if it does not exist
func (f *Factory) GetCalculationRepository(_ string) (domain.CalculationRepository, error) {
	repo := &CalculationRepository{
		db: f.db,
	}
	if err := repo.init(); err != nil {
		return nil, err
	}
	return repo, nil
}
