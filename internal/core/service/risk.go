package service

import (
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// Risk scoring weights and thresholds. One canonical rule set: the overriding
// condition is expenses exceeding income, everything else accumulates into a
// score mapped to a level via fixed bands.
const (
	scoreDeficit         = 4 // expenses exceed income (also forces "high")
	scoreSavingsCritical = 3 // savings rate below 10%
	scoreSavingsLow      = 2 // savings rate below 20%
	scoreExpenseCritical = 3 // expense ratio above 90%
	scoreExpenseHigh     = 2 // expense ratio above 70%
	scoreDiversification = 1 // fewer than 3 distinct asset types
	scoreEmergencyFund   = 2 // liquid assets cover fewer than 3 months
	scoreIrregularIncome = 1 // fewer than 3 income transactions in window

	minAssetTypes       = 3
	minCoverageMonths   = 3.0
	minIncomeTxPerLevel = 3

	bandHigh   = 6
	bandMedium = 3
)

// EvaluateRisk reduces a window of transactions (and optionally assets) to a
// deterministic risk classification. months is the length of the window in
// calendar months and is clamped to at least 1; sums are divided by it to
// produce monthly figures.
//
// Asset-dependent factors (diversification, emergency fund) are only
// evaluated when assets is non-nil, so callers without asset context pass
// nil rather than an empty slice.
//
// The function is pure: identical inputs always yield identical output.
func EvaluateRisk(txs []*domain.Transaction, assets []*domain.Asset, months int) *ports.RiskReport {
	if months < 1 {
		months = 1
	}

	var income, expense float64
	incomeCount := 0
	for _, tx := range txs {
		switch tx.Type {
		case domain.TypeIncome:
			income += tx.Amount
			incomeCount++
		case domain.TypeExpense:
			expense += tx.Amount
		}
	}

	monthlyIncome := income / float64(months)
	monthlyExpense := expense / float64(months)
	monthlySavings := monthlyIncome - monthlyExpense

	// Zero-income guard: ratios are defined as 0, never NaN/Inf.
	var savingsRate, expenseRatio float64
	if income > 0 {
		savingsRate = (income - expense) / income * 100
		expenseRatio = expense / income * 100
	}

	var liquid float64
	for _, a := range assets {
		if a.Type.IsLiquid() {
			liquid += a.Value
		}
	}
	var coverage float64
	if monthlyExpense > 0 {
		coverage = liquid / monthlyExpense
	}

	report := &ports.RiskReport{
		Level:       ports.RiskLow,
		Factors:     []string{},
		Suggestions: []string{},
		Stats: ports.RiskStats{
			MonthlyIncome:       monthlyIncome,
			MonthlyExpenses:     monthlyExpense,
			MonthlySavings:      monthlySavings,
			SavingsRate:         savingsRate,
			ExpenseRatio:        expenseRatio,
			EmergencyFundMonths: coverage,
		},
	}

	// No data at all: a zeroed report, not a pile of warnings.
	if len(txs) == 0 && len(assets) == 0 {
		report.Message = levelMessage(ports.RiskLow)
		return report
	}

	add := func(points int, factor, suggestion string) {
		report.Score += points
		report.Factors = append(report.Factors, factor)
		report.Suggestions = append(report.Suggestions, suggestion)
	}

	deficit := expense > income
	if deficit {
		add(scoreDeficit,
			"Expenses exceed income",
			"Immediately review and cut non-essential expenses")
	}

	switch {
	case savingsRate < 10:
		add(scoreSavingsCritical,
			"Critically low savings rate",
			"Try to save at least 10% of your income as a first step")
	case savingsRate < 20:
		add(scoreSavingsLow,
			"Low savings rate",
			"Try to save at least 20% of your monthly income")
	}

	switch {
	case expenseRatio > 90:
		add(scoreExpenseCritical,
			"Critical expense to income ratio",
			"Your expenses consume nearly all of your income; create a strict budget plan")
	case expenseRatio > 70:
		add(scoreExpenseHigh,
			"High expense to income ratio",
			"Review your monthly subscriptions and recurring expenses")
	}

	if assets != nil {
		types := make(map[domain.AssetType]struct{})
		for _, a := range assets {
			types[a.Type] = struct{}{}
		}
		if len(types) < minAssetTypes {
			add(scoreDiversification,
				"Low asset diversification",
				"Consider diversifying your assets across more types")
		}
		if monthlyExpense > 0 && coverage < minCoverageMonths {
			add(scoreEmergencyFund,
				"Low emergency fund coverage",
				"Build liquid savings covering at least 3 months of expenses")
		}
	}

	if len(txs) > 0 && incomeCount < minIncomeTxPerLevel {
		add(scoreIrregularIncome,
			"Irregular income",
			"Look for additional or more regular income sources")
	}

	switch {
	case deficit || report.Score >= bandHigh:
		report.Level = ports.RiskHigh
	case report.Score >= bandMedium:
		report.Level = ports.RiskMedium
	}
	report.Message = levelMessage(report.Level)

	return report
}

func levelMessage(level string) string {
	switch level {
	case ports.RiskHigh:
		return "High Risk: your finances need immediate attention"
	case ports.RiskMedium:
		return "Medium Risk: there is room to improve your financial habits"
	default:
		return "Safe: your finances are well balanced"
	}
}
