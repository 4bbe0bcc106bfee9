package ports

// RiskStats is the numeric summary underlying a risk evaluation.
type RiskStats struct {
	MonthlyIncome       float64 `json:"monthlyIncome"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	MonthlySavings      float64 `json:"monthlySavings"`
	SavingsRate         float64 `json:"savingsRate"`
	ExpenseRatio        float64 `json:"expenseRatio"`
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
}

// RiskReport classifies a user's short-term financial stability.
// Factors and Suggestions are parallel lists, one pair per triggered
// condition, in evaluation order.
type RiskReport struct {
	Level       string    `json:"riskLevel"`
	Score       int       `json:"score"`
	Message     string    `json:"message"`
	Factors     []string  `json:"factors"`
	Suggestions []string  `json:"suggestions"`
	Stats       RiskStats `json:"stats"`
}

// Risk levels in increasing severity.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)
