package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// CreateTransactionInput carries all data needed to record a transaction.
type CreateTransactionInput struct {
	UserID   string
	Title    string
	Amount   float64
	Category string
	Type     domain.TransactionType
	Date     time.Time
	Notes    string
	Currency string
}

// CategoryTotal is one entry of the top-categories breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SummaryStats aggregates a user's full transaction history.
type SummaryStats struct {
	TotalIncome   float64         `json:"totalIncome"`
	TotalExpense  float64         `json:"totalExpense"`
	Balance       float64         `json:"balance"`
	TopCategories []CategoryTotal `json:"topCategories"`
}

// TransactionService defines use-case operations for transactions.
type TransactionService interface {
	Create(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, filter ListTransactionsFilter) ([]*domain.Transaction, error)
	Update(ctx context.Context, id, userID string, update TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, id, userID string) error
	Summary(ctx context.Context, userID string) (*SummaryStats, error)
	// EvaluateRisk runs the risk evaluation over the trailing one-month
	// window of the user's transactions. Asset factors are not considered.
	EvaluateRisk(ctx context.Context, userID string, now time.Time) (*RiskReport, error)
}
