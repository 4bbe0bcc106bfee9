package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// analysisWindowMonths is the length of the health-analysis window: the
// trailing 90 days averaged over 3 months.
const analysisWindowMonths = 3

type AssetService struct {
	assets ports.AssetRepository
	txs    ports.TransactionRepository
	logger zerolog.Logger
}

func NewAssetService(assets ports.AssetRepository, txs ports.TransactionRepository, logger zerolog.Logger) *AssetService {
	return &AssetService{assets: assets, txs: txs, logger: logger}
}

func (s *AssetService) Create(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error) {
	now := time.Now().UTC()

	purchase := input.PurchaseDate
	if purchase.IsZero() {
		purchase = now
	}

	asset := &domain.Asset{
		UserID:       input.UserID,
		Name:         input.Name,
		Type:         input.Type,
		Value:        input.Value,
		PurchaseDate: purchase,
		Appreciation: input.Appreciation,
		Description:  input.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.assets.Create(ctx, asset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create asset")
		return nil, err
	}

	s.logger.Info().Str("asset_id", created.ID).Str("user_id", input.UserID).Msg("asset created")
	return created, nil
}

func (s *AssetService) List(ctx context.Context, userID string) ([]*domain.Asset, error) {
	return s.assets.ListByUser(ctx, userID)
}

func (s *AssetService) Update(ctx context.Context, id, userID string, update ports.AssetUpdate) (*domain.Asset, error) {
	return s.assets.Update(ctx, id, userID, update)
}

func (s *AssetService) Delete(ctx context.Context, id, userID string) error {
	return s.assets.Delete(ctx, id, userID)
}

// Analysis combines the user's assets with the trailing 90 days of
// transactions into a financial health report. An empty portfolio yields a
// zeroed summary, not an error.
func (s *AssetService) Analysis(ctx context.Context, userID string, now time.Time) (*ports.HealthAnalysis, error) {
	assets, err := s.assets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*domain.Asset{}
	}

	txs, err := s.txs.List(ctx, ports.ListTransactionsFilter{
		UserID:   userID,
		DateFrom: now.AddDate(0, 0, -90),
	})
	if err != nil {
		return nil, err
	}

	report := EvaluateRisk(txs, assets, analysisWindowMonths)
	metrics.RiskEvaluationsTotal.WithLabelValues(report.Level).Inc()

	var totalAssets float64
	for _, a := range assets {
		totalAssets += a.Value
	}

	var debtToAsset, expenseToIncome float64
	if totalAssets > 0 {
		debtToAsset = report.Stats.MonthlyExpenses * analysisWindowMonths / totalAssets
	}
	if report.Stats.MonthlyIncome > 0 {
		expenseToIncome = report.Stats.MonthlyExpenses / report.Stats.MonthlyIncome
	}

	return &ports.HealthAnalysis{
		Summary: ports.HealthSummary{
			TotalAssetsValue:    totalAssets,
			MonthlyIncome:       report.Stats.MonthlyIncome,
			MonthlyExpenses:     report.Stats.MonthlyExpenses,
			SavingsRate:         report.Stats.SavingsRate,
			EmergencyFundMonths: report.Stats.EmergencyFundMonths,
		},
		Metrics: ports.HealthMetrics{
			ExpenseToIncomeRatio: expenseToIncome,
			DebtToAssetRatio:     debtToAsset,
		},
		Risk: report,
	}, nil
}
