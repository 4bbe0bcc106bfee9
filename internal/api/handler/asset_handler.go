package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// AssetHandler handles HTTP requests for asset operations.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

// Create handles POST /api/assets.
//
// @Summary      Record an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssetRequest  true  "Asset details"
// @Success      201   {object}  domain.Asset
// @Failure      400   {object}  map[string]string
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var purchase time.Time
	if req.PurchaseDate != "" {
		if purchase, err = parseDate(req.PurchaseDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	asset, err := h.service.Create(c.Request().Context(), ports.CreateAssetInput{
		UserID:       userID,
		Name:         req.Name,
		Type:         domain.AssetType(req.Type),
		Value:        req.Value,
		PurchaseDate: purchase,
		Appreciation: req.Appreciation,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, asset)
}

// List handles GET /api/assets.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Asset
// @Failure      401  {object}  map[string]string
// @Router       /api/assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	assets, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assets)
}

// Update handles PUT /api/assets/:id.
//
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Asset id"
// @Param        body  body      updateAssetRequest  true  "Fields to change"
// @Success      200   {object}  domain.Asset
// @Failure      404   {object}  map[string]string
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.AssetUpdate{
		Name:         req.Name,
		Value:        req.Value,
		Appreciation: req.Appreciation,
		Description:  req.Description,
	}
	if req.Type != nil {
		t := domain.AssetType(*req.Type)
		update.Type = &t
	}
	if req.PurchaseDate != nil {
		purchase, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		update.PurchaseDate = &purchase
	}

	asset, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/:id.
//
// @Summary      Delete an asset
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Asset id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Asset deleted"})
}

// Analysis handles GET /api/assets/analysis.
//
// @Summary      Financial health analysis
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.HealthAnalysis
// @Failure      401  {object}  map[string]string
// @Router       /api/assets/analysis [get]
func (h *AssetHandler) Analysis(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	analysis, err := h.service.Analysis(c.Request().Context(), userID, time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analysis)
}
