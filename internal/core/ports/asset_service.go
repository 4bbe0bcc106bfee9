package ports

import (
	"context"
	"time"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// CreateAssetInput carries all data needed to record an asset.
type CreateAssetInput struct {
	UserID       string
	Name         string
	Type         domain.AssetType
	Value        float64
	PurchaseDate time.Time
	Appreciation float64
	Description  string
}

// HealthSummary is the numeric part of the financial health analysis.
type HealthSummary struct {
	TotalAssetsValue    float64 `json:"totalAssetsValue"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	SavingsRate         float64 `json:"savingsRate"`
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
}

// HealthMetrics carries the secondary ratios of the analysis.
type HealthMetrics struct {
	ExpenseToIncomeRatio float64 `json:"expenseToIncomeRatio"`
	DebtToAssetRatio     float64 `json:"debtToAssetRatio"`
}

// HealthAnalysis is the full response of GET /api/assets/analysis.
type HealthAnalysis struct {
	Summary HealthSummary `json:"summary"`
	Metrics HealthMetrics `json:"metrics"`
	Risk    *RiskReport   `json:"risk"`
}

// AssetService defines use-case operations for assets.
type AssetService interface {
	Create(ctx context.Context, input CreateAssetInput) (*domain.Asset, error)
	List(ctx context.Context, userID string) ([]*domain.Asset, error)
	Update(ctx context.Context, id, userID string, update AssetUpdate) (*domain.Asset, error)
	Delete(ctx context.Context, id, userID string) error
	// Analysis combines the user's assets with the trailing 90 days of
	// transactions into a financial health report.
	Analysis(ctx context.Context, userID string, now time.Time) (*HealthAnalysis, error)
}
