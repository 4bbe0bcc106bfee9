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

type stubAssetService struct {
	createFn   func(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error)
	listFn     func(ctx context.Context, userID string) ([]*domain.Asset, error)
	updateFn   func(ctx context.Context, id, userID string, update ports.AssetUpdate) (*domain.Asset, error)
	deleteFn   func(ctx context.Context, id, userID string) error
	analysisFn func(ctx context.Context, userID string, now time.Time) (*ports.HealthAnalysis, error)
}

func (s *stubAssetService) Create(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error) {
	return s.createFn(ctx, input)
}

func (s *stubAssetService) List(ctx context.Context, userID string) ([]*domain.Asset, error) {
	return s.listFn(ctx, userID)
}

func (s *stubAssetService) Update(ctx context.Context, id, userID string, update ports.AssetUpdate) (*domain.Asset, error) {
	return s.updateFn(ctx, id, userID, update)
}

func (s *stubAssetService) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

func (s *stubAssetService) Analysis(ctx context.Context, userID string, now time.Time) (*ports.HealthAnalysis, error) {
	return s.analysisFn(ctx, userID, now)
}

func TestAssetHandler_Create_Success(t *testing.T) {
	svc := &stubAssetService{
		createFn: func(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error) {
			if input.Type != domain.AssetSavings || input.Value != 5000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Asset{ID: "asset-1", Name: input.Name}, nil
		},
	}

	body := `{"name":"Emergency fund","type":"savings","value":5000}`
	c, rec := newTestContext(http.MethodPost, "/api/assets", body)
	c.Set("user_id", "user-1")

	if err := NewAssetHandler(svc).Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAssetHandler_Create_UnknownType(t *testing.T) {
	body := `{"name":"Boat","type":"watercraft","value":5000}`
	c, _ := newTestContext(http.MethodPost, "/api/assets", body)
	c.Set("user_id", "user-1")

	err := NewAssetHandler(&stubAssetService{}).Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown asset type, got %v", err)
	}
}

func TestAssetHandler_Delete(t *testing.T) {
	svc := &stubAssetService{
		deleteFn: func(ctx context.Context, id, userID string) error {
			if id != "asset-1" || userID != "user-1" {
				t.Fatalf("id or owner not forwarded: %q %q", id, userID)
			}
			return nil
		},
	}

	c, rec := newTestContext(http.MethodDelete, "/api/assets/asset-1", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("asset-1")

	if err := NewAssetHandler(svc).Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Asset deleted" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestAssetHandler_Analysis(t *testing.T) {
	svc := &stubAssetService{
		analysisFn: func(ctx context.Context, userID string, now time.Time) (*ports.HealthAnalysis, error) {
			return &ports.HealthAnalysis{
				Summary: ports.HealthSummary{TotalAssetsValue: 25000},
				Risk:    &ports.RiskReport{Level: ports.RiskLow, Factors: []string{}, Suggestions: []string{}},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/assets/analysis", "")
	c.Set("user_id", "user-1")

	if err := NewAssetHandler(svc).Analysis(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp ports.HealthAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Summary.TotalAssetsValue != 25000 || resp.Risk == nil {
		t.Fatalf("unexpected analysis: %+v", resp)
	}
}
