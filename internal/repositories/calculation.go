package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// CalculationWriteRepository stores calculation audit records in Postgres
type CalculationWriteRepository struct {
	db *sqlx.DB
}

// NewCalculationWriteRepository creates a new repository instance
func NewCalculationWriteRepository(db *sqlx.DB) *CalculationWriteRepository {
	return &CalculationWriteRepository{db: db}
}

// Save inserts a calculation record
func (r *CalculationWriteRepository) Save(ctx context.Context, calc models.Calculation) error {
	query := `
		INSERT INTO calculations (calculation_id, kind, input, result, description, created_at)
		VALUES (:calculation_id, :kind, :input, :result, :description, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, calc); err != nil {
		logger.Log.Errorw("failed to save calculation", "calculation_id", calc.CalculationID, "kind", calc.Kind, "error", err)
		return err
	}
	return nil
}

// CalculationReadRepository reads calculation audit records from Postgres
type CalculationReadRepository struct {
	db *sqlx.DB
}

// NewCalculationReadRepository creates a new repository instance
func NewCalculationReadRepository(db *sqlx.DB) *CalculationReadRepository {
	return &CalculationReadRepository{db: db}
}

// ListRecent returns up to limit most recent calculations of the given kind.
// An empty kind matches every calculation.
func (r *CalculationReadRepository) ListRecent(ctx context.Context, kind string, limit int) ([]models.Calculation, error) {
	query := `
		SELECT calculation_id, kind, input, result, description, created_at
		FROM calculations
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`

	calcs := []models.Calculation{}
	if err := r.db.SelectContext(ctx, &calcs, query, kind, limit); err != nil {
		logger.Log.Errorw("failed to list calculations", "kind", kind, "limit", limit, "error", err)
		return nil, err
	}
	return calcs, nil
}
