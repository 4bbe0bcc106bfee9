package service

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

func tx(txType domain.TransactionType, amount float64, title string) *domain.Transaction {
	return &domain.Transaction{
		Title:  title,
		Amount: amount,
		Type:   txType,
		Date:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func asset(assetType domain.AssetType, value float64) *domain.Asset {
	return &domain.Asset{Name: string(assetType), Type: assetType, Value: value}
}

func hasFactor(report *ports.RiskReport, factor string) bool {
	for _, f := range report.Factors {
		if f == factor {
			return true
		}
	}
	return false
}

func TestEvaluateRisk_EmptyInput(t *testing.T) {
	report := EvaluateRisk(nil, nil, 1)

	if report.Level != ports.RiskLow {
		t.Fatalf("expected low level for empty input, got %s", report.Level)
	}
	if len(report.Factors) != 0 || len(report.Suggestions) != 0 {
		t.Fatalf("expected empty factor list, got %v / %v", report.Factors, report.Suggestions)
	}
	if report.Stats != (ports.RiskStats{}) {
		t.Fatalf("expected zeroed stats, got %+v", report.Stats)
	}
}

func TestEvaluateRisk_ZeroIncomeNeverNaN(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeExpense, 500, "Rent"),
	}

	report := EvaluateRisk(txs, nil, 1)

	for name, v := range map[string]float64{
		"savings rate":  report.Stats.SavingsRate,
		"expense ratio": report.Stats.ExpenseRatio,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s must be finite with zero income, got %v", name, v)
		}
		if v != 0 {
			t.Fatalf("%s must be 0 with zero income, got %v", name, v)
		}
	}
	if report.Level != ports.RiskHigh {
		t.Fatalf("spending with no income must be high risk, got %s", report.Level)
	}
}

func TestEvaluateRisk_DeficitForcesHigh(t *testing.T) {
	// Healthy-looking on every other axis: diversified, covered, regular.
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 1000, "Salary"),
		tx(domain.TypeIncome, 1000, "Salary"),
		tx(domain.TypeIncome, 1000, "Salary"),
		tx(domain.TypeExpense, 3100, "Everything"),
	}
	assets := []*domain.Asset{
		asset(domain.AssetSavings, 100000),
		asset(domain.AssetRealEstate, 300000),
		asset(domain.AssetInvestment, 50000),
	}

	report := EvaluateRisk(txs, assets, 1)

	if report.Level != ports.RiskHigh {
		t.Fatalf("expenses above income must force high, got %s (score %d)", report.Level, report.Score)
	}
	if !hasFactor(report, "Expenses exceed income") {
		t.Fatalf("missing deficit factor: %v", report.Factors)
	}
}

func TestEvaluateRisk_BalancedMonthIsLow(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 4000, "Salary"),
		tx(domain.TypeExpense, 250, "Groceries"),
		tx(domain.TypeExpense, 1200, "Rent"),
		tx(domain.TypeExpense, 5, "Coffee"),
	}

	report := EvaluateRisk(txs, nil, 1)

	if report.Stats.MonthlyIncome != 4000 {
		t.Fatalf("expected income 4000, got %v", report.Stats.MonthlyIncome)
	}
	if report.Stats.MonthlyExpenses != 1455 {
		t.Fatalf("expected expenses 1455, got %v", report.Stats.MonthlyExpenses)
	}
	if report.Stats.MonthlySavings != 2545 {
		t.Fatalf("expected savings 2545, got %v", report.Stats.MonthlySavings)
	}
	if report.Level != ports.RiskLow {
		t.Fatalf("expected low risk, got %s (factors %v)", report.Level, report.Factors)
	}
}

func TestEvaluateRisk_CriticalExpenseRatio(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 2000, "Salary"),
		tx(domain.TypeExpense, 1900, "Bills"),
	}

	report := EvaluateRisk(txs, nil, 1)

	if report.Stats.ExpenseRatio != 95 {
		t.Fatalf("expected expense ratio 95, got %v", report.Stats.ExpenseRatio)
	}
	if report.Level != ports.RiskHigh {
		t.Fatalf("expected high risk at 95%% expense ratio, got %s (score %d)", report.Level, report.Score)
	}
	if !hasFactor(report, "Critical expense to income ratio") {
		t.Fatalf("missing critical expense-ratio factor: %v", report.Factors)
	}
}

func TestEvaluateRisk_AssetFactors(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 3000, "Salary"),
		tx(domain.TypeIncome, 3000, "Salary"),
		tx(domain.TypeIncome, 3000, "Salary"),
		tx(domain.TypeExpense, 2000, "Rent"),
	}
	// One asset type, liquid value below three months of expenses.
	assets := []*domain.Asset{asset(domain.AssetSavings, 1000)}

	report := EvaluateRisk(txs, assets, 1)

	if !hasFactor(report, "Low asset diversification") {
		t.Fatalf("missing diversification factor: %v", report.Factors)
	}
	if !hasFactor(report, "Low emergency fund coverage") {
		t.Fatalf("missing emergency fund factor: %v", report.Factors)
	}
	if report.Stats.EmergencyFundMonths != 0.5 {
		t.Fatalf("expected 0.5 months coverage, got %v", report.Stats.EmergencyFundMonths)
	}
}

func TestEvaluateRisk_AssetFactorsSkippedWithoutAssets(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 3000, "Salary"),
		tx(domain.TypeExpense, 2000, "Rent"),
	}

	report := EvaluateRisk(txs, nil, 1)

	if hasFactor(report, "Low asset diversification") || hasFactor(report, "Low emergency fund coverage") {
		t.Fatalf("asset factors must be skipped without asset context: %v", report.Factors)
	}
}

func TestEvaluateRisk_MonthlyAveraging(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 9000, "Salary"),
		tx(domain.TypeExpense, 3000, "Rent"),
	}

	report := EvaluateRisk(txs, nil, 3)

	if report.Stats.MonthlyIncome != 3000 {
		t.Fatalf("expected monthly income 3000 over 3 months, got %v", report.Stats.MonthlyIncome)
	}
	if report.Stats.MonthlyExpenses != 1000 {
		t.Fatalf("expected monthly expenses 1000 over 3 months, got %v", report.Stats.MonthlyExpenses)
	}
	// Ratios are window totals, unaffected by the divisor.
	if math.Abs(report.Stats.SavingsRate-66.67) > 0.01 {
		t.Fatalf("unexpected savings rate: %v", report.Stats.SavingsRate)
	}
}

func TestEvaluateRisk_Idempotent(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 2500, "Salary"),
		tx(domain.TypeExpense, 2100, "Rent"),
		tx(domain.TypeExpense, 300, "Food"),
	}
	assets := []*domain.Asset{
		asset(domain.AssetSavings, 4000),
		asset(domain.AssetVehicle, 9000),
	}

	first := EvaluateRisk(txs, assets, 1)
	second := EvaluateRisk(txs, assets, 1)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluation is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestEvaluateRisk_IrregularIncome(t *testing.T) {
	txs := []*domain.Transaction{
		tx(domain.TypeIncome, 5000, "Freelance gig"),
		tx(domain.TypeExpense, 1000, "Rent"),
	}

	report := EvaluateRisk(txs, nil, 1)

	if !hasFactor(report, "Irregular income") {
		t.Fatalf("missing irregular income factor: %v", report.Factors)
	}
}
