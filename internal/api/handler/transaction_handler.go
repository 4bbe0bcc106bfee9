package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create handles POST /api/transactions.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction details"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var date time.Time
	if req.Date != "" {
		if date, err = parseDate(req.Date); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	tx, err := h.service.Create(c.Request().Context(), ports.CreateTransactionInput{
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Type:     domain.TransactionType(req.Type),
		Date:     date,
		Notes:    req.Notes,
		Currency: req.Currency,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tx)
}

// List handles GET /api/transactions with optional startDate, endDate and
// category filters.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query     string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Param        category   query     string  false  "Exact category match"
// @Success      200        {array}   domain.Transaction
// @Failure      401        {object}  map[string]string
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	filter := ports.ListTransactionsFilter{
		UserID:   userID,
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("startDate"); raw != "" {
		if filter.DateFrom, err = parseDate(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		if filter.DateTo, err = parseDate(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	txs, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txs)
}

// Update handles PUT /api/transactions/:id.
//
// @Summary      Update a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Transaction id"
// @Param        body  body      updateTransactionRequest  true  "Fields to change"
// @Success      200   {object}  domain.Transaction
// @Failure      404   {object}  map[string]string
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.TransactionUpdate{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Notes:    req.Notes,
		Currency: req.Currency,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		update.Type = &t
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		update.Date = &date
	}

	tx, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

// Delete handles DELETE /api/transactions/:id.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Transaction id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted"})
}

// Summary handles GET /api/transactions/summary/stats.
//
// @Summary      Transaction totals and top categories
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SummaryStats
// @Failure      401  {object}  map[string]string
// @Router       /api/transactions/summary/stats [get]
func (h *TransactionHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// EvaluateRisk handles GET /api/transactions/evaluate-risk.
//
// @Summary      Risk evaluation over the trailing month
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RiskReport
// @Failure      401  {object}  map[string]string
// @Router       /api/transactions/evaluate-risk [get]
func (h *TransactionHandler) EvaluateRisk(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	report, err := h.service.EvaluateRisk(c.Request().Context(), userID, time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
