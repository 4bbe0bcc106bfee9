package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

type stubTransactionService struct {
	createFn       func(ctx context.Context, input ports.CreateTransactionInput) (*domain.Transaction, error)
	listFn         func(ctx context.Context, filter ports.ListTransactionsFilter) ([]*domain.Transaction, error)
	updateFn       func(ctx context.Context, id, userID string, update ports.TransactionUpdate) (*domain.Transaction, error)
	deleteFn       func(ctx context.Context, id, userID string) error
	summaryFn      func(ctx context.Context, userID string) (*ports.SummaryStats, error)
	evaluateRiskFn func(ctx context.Context, userID string, now time.Time) (*ports.RiskReport, error)
}

func (s *stubTransactionService) Create(ctx context.Context, input ports.CreateTransactionInput) (*domain.Transaction, error) {
	return s.createFn(ctx, input)
}

func (s *stubTransactionService) List(ctx context.Context, filter ports.ListTransactionsFilter) ([]*domain.Transaction, error) {
	return s.listFn(ctx, filter)
}

func (s *stubTransactionService) Update(ctx context.Context, id, userID string, update ports.TransactionUpdate) (*domain.Transaction, error) {
	return s.updateFn(ctx, id, userID, update)
}

func (s *stubTransactionService) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func (s *stubTransactionService) Summary(ctx context.Context, userID string) (*ports.SummaryStats, error) {
	return s.summaryFn(ctx, userID)
}

func (s *stubTransactionService) EvaluateRisk(ctx context.Context, userID string, now time.Time) (*ports.RiskReport, error) {
	return s.evaluateRiskFn(ctx, userID, now)
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	svc := &stubTransactionService{
		createFn: func(ctx context.Context, input ports.CreateTransactionInput) (*domain.Transaction, error) {
			if input.UserID != "user-1" || input.Type != domain.TypeExpense {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Transaction{ID: "tx-1", Title: input.Title, Amount: input.Amount}, nil
		},
	}

	body := `{"title":"Groceries","amount":42.5,"category":"food","type":"expense"}`
	c, rec := newTestContext(http.MethodPost, "/api/transactions", body)
	c.Set("user_id", "user-1")

	if err := NewTransactionHandler(svc).Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_InvalidType(t *testing.T) {
	body := `{"title":"Groceries","amount":42.5,"category":"food","type":"transfer"}`
	c, _ := newTestContext(http.MethodPost, "/api/transactions", body)
	c.Set("user_id", "user-1")

	err := NewTransactionHandler(&stubTransactionService{}).Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %v", err)
	}
}

func TestTransactionHandler_Create_NegativeAmount(t *testing.T) {
	body := `{"title":"Groceries","amount":-5,"category":"food","type":"expense"}`
	c, _ := newTestContext(http.MethodPost, "/api/transactions", body)
	c.Set("user_id", "user-1")

	err := NewTransactionHandler(&stubTransactionService{}).Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %v", err)
	}
}

func TestTransactionHandler_Create_Unauthenticated(t *testing.T) {
	body := `{"title":"Groceries","amount":42.5,"category":"food","type":"expense"}`
	c, _ := newTestContext(http.MethodPost, "/api/transactions", body)

	err := NewTransactionHandler(&stubTransactionService{}).Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user id, got %v", err)
	}
}

func TestTransactionHandler_List_Filters(t *testing.T) {
	svc := &stubTransactionService{
		listFn: func(ctx context.Context, filter ports.ListTransactionsFilter) ([]*domain.Transaction, error) {
			if filter.UserID != "user-1" || filter.Category != "food" {
				t.Fatalf("filters not forwarded: %+v", filter)
			}
			want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			if !filter.DateFrom.Equal(want) {
				t.Fatalf("startDate not parsed: %v", filter.DateFrom)
			}
			return []*domain.Transaction{{ID: "tx-1"}}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/transactions?category=food&startDate=2025-01-01", "")
	c.Set("user_id", "user-1")

	if err := NewTransactionHandler(svc).List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransactionHandler_Update_PartialPatch(t *testing.T) {
	svc := &stubTransactionService{
		updateFn: func(ctx context.Context, id, userID string, update ports.TransactionUpdate) (*domain.Transaction, error) {
			if id != "tx-1" || userID != "user-1" {
				t.Fatalf("id or owner not forwarded: %q %q", id, userID)
			}
			if update.Amount == nil || *update.Amount != 99 {
				t.Fatalf("amount not patched: %+v", update)
			}
			if update.Title != nil {
				t.Fatalf("absent field must stay nil: %+v", update)
			}
			return &domain.Transaction{ID: id, Amount: *update.Amount}, nil
		},
	}

	c, rec := newTestContext(http.MethodPut, "/api/transactions/tx-1", `{"amount":99}`)
	c.Set("user_id", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("tx-1")

	if err := NewTransactionHandler(svc).Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	svc := &stubTransactionService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			return nil
		},
	}

	c, rec := newTestContext(http.MethodDelete, "/api/transactions/tx-1", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("tx-1")

	if err := NewTransactionHandler(svc).Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Deleted" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestTransactionHandler_Delete_NotFound(t *testing.T) {
	svc := &stubTransactionService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			return domain.ErrTransactionNotFound
		},
	}

	c, _ := newTestContext(http.MethodDelete, "/api/transactions/missing", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := NewTransactionHandler(svc).Delete(c); err != domain.ErrTransactionNotFound {
		t.Fatalf("expected sentinel passthrough, got %v", err)
	}
}

func TestTransactionHandler_Summary(t *testing.T) {
	svc := &stubTransactionService{
		summaryFn: func(ctx context.Context, userID string) (*ports.SummaryStats, error) {
			return &ports.SummaryStats{TotalIncome: 4000, TotalExpense: 1500, Balance: 2500}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/transactions/summary/stats", "")
	c.Set("user_id", "user-1")

	if err := NewTransactionHandler(svc).Summary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp ports.SummaryStats
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Balance != 2500 {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestTransactionHandler_EvaluateRisk(t *testing.T) {
	svc := &stubTransactionService{
		evaluateRiskFn: func(ctx context.Context, userID string, now time.Time) (*ports.RiskReport, error) {
			return &ports.RiskReport{Level: ports.RiskLow, Factors: []string{}, Suggestions: []string{}}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/transactions/evaluate-risk", "")
	c.Set("user_id", "user-1")

	if err := NewTransactionHandler(svc).EvaluateRisk(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp ports.RiskReport
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Level != ports.RiskLow {
		t.Fatalf("unexpected report: %+v", resp)
	}
}
