package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/ports"
)

// ExternalHandler handles the /api/external proxy routes. Every route talks
// to exactly one provider; a failure on one route never affects the others.
type ExternalHandler struct {
	service ports.MarketService
}

func NewExternalHandler(service ports.MarketService) *ExternalHandler {
	return &ExternalHandler{service: service}
}

// Quote handles GET /api/external/market/quote?symbol=.
//
// @Summary      Market quote for a symbol
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Param        symbol  query     string  true  "Stock symbol (e.g. AAPL)"
// @Success      200     {object}  domain.Quote
// @Failure      400     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /api/external/market/quote [get]
func (h *ExternalHandler) Quote(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Symbol is required")
	}

	quote, err := h.service.Quote(c.Request().Context(), symbol)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// Gainers handles GET /api/external/market/gainers.
//
// @Summary      Top market gainers
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ScreenerStock
// @Failure      503  {object}  map[string]string
// @Router       /api/external/market/gainers [get]
func (h *ExternalHandler) Gainers(c echo.Context) error {
	gainers, err := h.service.Gainers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gainers)
}

// Popular handles GET /api/external/market/popular.
//
// @Summary      Quotes for the popular-stocks watchlist
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.PopularStock
// @Failure      503  {object}  map[string]string
// @Router       /api/external/market/popular [get]
func (h *ExternalHandler) Popular(c echo.Context) error {
	stocks, err := h.service.Popular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stocks)
}

// Trends handles GET /api/external/market/trends.
//
// @Summary      Major market index quotes
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.IndexQuote
// @Failure      503  {object}  map[string]string
// @Router       /api/external/market/trends [get]
func (h *ExternalHandler) Trends(c echo.Context) error {
	trends, err := h.service.Trends(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trends)
}

// Rates handles GET /api/external/market/rates.
//
// @Summary      Exchange rates relative to USD
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ForexRates
// @Failure      503  {object}  map[string]string
// @Router       /api/external/market/rates [get]
func (h *ExternalHandler) Rates(c echo.Context) error {
	rates, err := h.service.Rates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rates)
}

// News handles GET /api/external/news?category=.
//
// @Summary      Finance news
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Search term (default: finance)"
// @Success      200       {array}   domain.NewsArticle
// @Failure      503       {object}  map[string]string
// @Router       /api/external/news [get]
func (h *ExternalHandler) News(c echo.Context) error {
	articles, err := h.service.News(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Advice handles GET /api/external/advice.
//
// @Summary      Financial tips
// @Tags         external
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.AdviceQuote
// @Failure      503  {object}  map[string]string
// @Router       /api/external/advice [get]
func (h *ExternalHandler) Advice(c echo.Context) error {
	quotes, err := h.service.Advice(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotes)
}
