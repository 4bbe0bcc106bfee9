package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// AssetRepository defines persistence operations for assets. Update and
// Delete match on both id and owner; a wrong owner is indistinguishable from
// a missing id.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Asset, error)
	Update(ctx context.Context, id, userID string, update AssetUpdate) (*domain.Asset, error)
	Delete(ctx context.Context, id, userID string) error
}

// AssetUpdate holds the fields of a partial update. Nil means "leave
// unchanged".
type AssetUpdate struct {
	Name         *string
	Type         *domain.AssetType
	Value        *float64
	PurchaseDate *time.Time
	Appreciation *float64
	Description  *string
}
