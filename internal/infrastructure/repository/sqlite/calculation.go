package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
)

// CalculationRepository is a SQLite-backed repository for calculations
type CalculationRepository struct {
	db *sql.DB
}

func (r *CalculationRepository) init() error {
	calcTable := `
	CREATE TABLE IF NOT EXISTS calculations (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  calc_type TEXT,
	  created_at DATETIME,
	  calc_json TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations (created_at);
	`
	if _, err := r.db.Exec(calcTable); err != nil {
		return fmt.Errorf("failed to create calculations table: %w", err)
	}

	return nil
}

// Create inserts a new calculation into the database
func (r *CalculationRepository) Create(ctx context.Context, calc domain.Calculation) error {
	data, err := json.Marshal(calc)
	if err != nil {
		return fmt.Errorf("failed to marshal calculation: %w", err)
	}
	query := `INSERT INTO calculations (calc_type, created_at, calc_json) VALUES (?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, string(calc.Type), calc.CreatedAt, string(data))
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}
	return nil
}

// GetHistorySince returns all calculations created since the given time
func (r *CalculationRepository) GetHistorySince(ctx context.Context, since time.Time) ([]domain.Calculation, error) {
	query := `SELECT calc_json FROM calculations WHERE created_at >= ? ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	var calculations []domain.Calculation
	for rows.Next() {
		var calcJSON string
		if err := rows.Scan(&calcJSON); err != nil {
			return nil, fmt.Errorf("failed to scan calculation row: %w", err)
		}
		var calc domain.Calculation
		if err := json.Unmarshal([]byte(calcJSON), &calc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculation: %w", err)
		}
		calculations = append(calculations, calc)
	}
	return calculations, rows.Err()
}
