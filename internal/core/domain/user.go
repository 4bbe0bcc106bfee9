package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Supported display currencies.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyINR = "INR"
)

// Saving-goal periods.
const (
	GoalMonthly = "monthly"
	GoalYearly  = "yearly"
	GoalCustom  = "custom"
)

var ErrUserExists = errors.New("user exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account holder. PasswordHash is never serialized.
type User struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Name              string    `json:"name" bson:"name"`
	Email             string    `json:"email" bson:"email"`
	PasswordHash      string    `json:"-" bson:"password_hash"`
	Role              string    `json:"role" bson:"role"`
	PreferredCurrency string    `json:"preferredCurrency" bson:"preferred_currency"`
	MonthlyBudget     float64   `json:"monthlyBudget" bson:"monthly_budget"`
	SavingGoal        float64   `json:"savingGoal" bson:"saving_goal"`
	SavingGoalType    string    `json:"savingGoalType" bson:"saving_goal_type"`
	CreatedAt         time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updated_at"`
}
