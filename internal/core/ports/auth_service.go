package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// UpdateProfileInput carries the optional profile fields of a PUT /profile
// request. Nil means "leave unchanged".
type UpdateProfileInput struct {
	SavingGoal        *float64
	SavingGoalType    *string
	MonthlyBudget     *float64
	PreferredCurrency *string
}

// AuthService defines registration, login and profile use-cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}
