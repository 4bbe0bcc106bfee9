package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

const (
	seedEmail    = "demo@demo.com"
	seedPassword = "password"
)

// SeedHandler creates a demo user with sample transactions. It is only
// registered outside production.
type SeedHandler struct {
	users ports.UserRepository
	txs   ports.TransactionRepository
}

func NewSeedHandler(users ports.UserRepository, txs ports.TransactionRepository) *SeedHandler {
	return &SeedHandler{users: users, txs: txs}
}

type seedResponse struct {
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
	// Password echoes the demo credential; the route never ships to production.
	Password string `json:"password,omitempty"`
}

// Seed handles GET /api/seed. Idempotent: re-running reports the existing
// seed instead of duplicating it.
func (h *SeedHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.users.FindByEmail(ctx, seedEmail); err == nil {
		return c.JSON(http.StatusOK, seedResponse{Message: "Seed already exists"})
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user, err := h.users.Create(ctx, &domain.User{
		Name:              "Demo User",
		Email:             seedEmail,
		PasswordHash:      string(hash),
		Role:              domain.RoleUser,
		PreferredCurrency: domain.CurrencyUSD,
		MonthlyBudget:     2000,
		SavingGoalType:    domain.GoalMonthly,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return err
	}

	samples := []struct {
		title    string
		amount   float64
		category string
		txType   domain.TransactionType
	}{
		{"Salary", 4000, "Salary", domain.TypeIncome},
		{"Groceries", 250, "Food", domain.TypeExpense},
		{"Rent", 1200, "Housing", domain.TypeExpense},
		{"Coffee", 5, "Food", domain.TypeExpense},
	}
	for _, s := range samples {
		_, err := h.txs.Create(ctx, &domain.Transaction{
			UserID:    user.ID,
			Title:     s.title,
			Amount:    s.amount,
			Category:  s.category,
			Type:      s.txType,
			Date:      now,
			Currency:  domain.CurrencyUSD,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, seedResponse{
		Message:  "Seed created",
		Email:    seedEmail,
		Password: seedPassword,
	})
}
