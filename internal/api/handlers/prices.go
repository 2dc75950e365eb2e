package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/response"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
)

// PriceHandler handles HTTP requests for market price lookups and refreshes.
type PriceHandler struct {
	priceService   *service.PriceService
	holdingService *service.HoldingService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependencies.
func NewPriceHandler(priceService *service.PriceService, holdingService *service.HoldingService) *PriceHandler {
	return &PriceHandler{
		priceService:   priceService,
		holdingService: holdingService,
	}
}

// Price handles GET requests for the current price of one symbol.
//
// Endpoint: GET /api/price/{symbol}
// Response: 200 OK with {"symbol": ..., "price": ...}
//
// The lookup never fails outright: stale cache entries and configured
// defaults back the remote feed.
func (h *PriceHandler) Price(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	price := h.priceService.CurrentPrice(r.Context(), symbol)

	respondJSON(w, http.StatusOK, map[string]any{
		"symbol": symbol,
		"price":  price,
	})
}

// Refresh handles POST requests to refresh cached prices for all holdings.
//
// Endpoint: POST /api/price/refresh
// Response: 200 OK with {"refreshed": <count>}
// Error: 500 Internal Server Error if any symbol fails to refresh
func (h *PriceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.holdingService.GetAllHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve holdings", err.Error())
		return
	}

	symbols := make([]string, 0, len(holdings))
	for _, holding := range holdings {
		symbols = append(symbols, holding.Symbol)
	}

	if err := h.priceService.RefreshAll(r.Context(), symbols); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"refreshed": len(symbols)})
}
