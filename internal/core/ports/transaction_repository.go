package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// ListTransactionsFilter carries the query parameters for listing
// transactions. UserID is always enforced by the service layer: every read
// and write is scoped to the owner.
type ListTransactionsFilter struct {
	UserID   string
	Category string    // optional: exact match
	DateFrom time.Time // optional: date >= DateFrom
	DateTo   time.Time // optional: date <= DateTo
}

// TransactionRepository defines persistence operations for transactions.
// Update and Delete match on both id and owner; a wrong owner is
// indistinguishable from a missing id.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	List(ctx context.Context, filter ListTransactionsFilter) ([]*domain.Transaction, error)
	Update(ctx context.Context, id, userID string, update TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, id, userID string) error
}

// TransactionUpdate holds the fields of a partial update. Nil means "leave
// unchanged".
type TransactionUpdate struct {
	Title    *string
	Amount   *float64
	Category *string
	Type     *domain.TransactionType
	Date     *time.Time
	Notes    *string
	Currency *string
}
