package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// riskWindowMonths is the length of the evaluate-risk window. The trailing
// month is treated as already-monthly, so sums are not divided further.
const riskWindowMonths = 1

const topCategoryCount = 3

type TransactionService struct {
	repo   ports.TransactionRepository
	logger zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

func (s *TransactionService) Create(ctx context.Context, input ports.CreateTransactionInput) (*domain.Transaction, error) {
	now := time.Now().UTC()

	date := input.Date
	if date.IsZero() {
		date = now
	}
	currency := input.Currency
	if currency == "" {
		currency = domain.CurrencyUSD
	}

	tx := &domain.Transaction{
		UserID:    input.UserID,
		Title:     input.Title,
		Amount:    input.Amount,
		Category:  input.Category,
		Type:      input.Type,
		Date:      date,
		Notes:     input.Notes,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, tx)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create transaction")
		return nil, err
	}

	metrics.TransactionsCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	s.logger.Info().Str("transaction_id", created.ID).Str("user_id", input.UserID).Msg("transaction created")
	return created, nil
}

func (s *TransactionService) List(ctx context.Context, filter ports.ListTransactionsFilter) ([]*domain.Transaction, error) {
	return s.repo.List(ctx, filter)
}

func (s *TransactionService) Update(ctx context.Context, id, userID string, update ports.TransactionUpdate) (*domain.Transaction, error) {
	return s.repo.Update(ctx, id, userID, update)
}

func (s *TransactionService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}

// Summary aggregates the user's full history into totals and the top
// categories by summed amount.
func (s *TransactionService) Summary(ctx context.Context, userID string) (*ports.SummaryStats, error) {
	txs, err := s.repo.List(ctx, ports.ListTransactionsFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	stats := &ports.SummaryStats{TopCategories: []ports.CategoryTotal{}}
	byCategory := make(map[string]float64)
	for _, tx := range txs {
		switch tx.Type {
		case domain.TypeIncome:
			stats.TotalIncome += tx.Amount
		case domain.TypeExpense:
			stats.TotalExpense += tx.Amount
		}
		byCategory[tx.Category] += tx.Amount
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpense

	for category, amount := range byCategory {
		stats.TopCategories = append(stats.TopCategories, ports.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(stats.TopCategories, func(i, j int) bool {
		a, b := stats.TopCategories[i], stats.TopCategories[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Category < b.Category
	})
	if len(stats.TopCategories) > topCategoryCount {
		stats.TopCategories = stats.TopCategories[:topCategoryCount]
	}

	return stats, nil
}

// EvaluateRisk classifies the trailing month of the user's transactions.
// Asset factors are out of scope here; GET /api/assets/analysis covers them.
func (s *TransactionService) EvaluateRisk(ctx context.Context, userID string, now time.Time) (*ports.RiskReport, error) {
	txs, err := s.repo.List(ctx, ports.ListTransactionsFilter{
		UserID:   userID,
		DateFrom: now.AddDate(0, -1, 0),
	})
	if err != nil {
		return nil, err
	}

	report := EvaluateRisk(txs, nil, riskWindowMonths)
	metrics.RiskEvaluationsTotal.WithLabelValues(report.Level).Inc()
	return report, nil
}
