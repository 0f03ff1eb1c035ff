package services

//go:generate mockgen -source=history.go -destination=history_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// CalculationReader lists stored calculations.
type CalculationReader interface {
	ListRecent(ctx context.Context, kind string, limit int) ([]models.Calculation, error)
}

// Limits for history queries
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// HistoryService exposes the calculation audit log.
type HistoryService struct {
	reader CalculationReader
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(reader CalculationReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// ListRecent returns recent calculations, clamping limit to [1, MaxHistoryLimit].
func (s *HistoryService) ListRecent(ctx context.Context, kind string, limit int) ([]models.Calculation, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.reader.ListRecent(ctx, kind, limit)
}
