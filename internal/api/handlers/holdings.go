package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/request"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/response"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/model"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/validation"
)

// HoldingHandler handles HTTP requests for the base holding snapshot.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// Holdings handles GET requests to retrieve all base holdings.
//
// Endpoint: GET /api/holding
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	holdings, err := h.holdingService.GetAllHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, holdings)
}

// Holding handles GET requests for one holding by symbol.
//
// Endpoint: GET /api/holding/{symbol}
// Response: 200 OK with Holding
// Error: 404 Not Found if the symbol is not tracked
func (h *HoldingHandler) Holding(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	holding, err := h.holdingService.GetHolding(symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests to add an ETF to the tracked universe.
//
// Endpoint: POST /api/holding
// Request Body: CreateHoldingRequest (symbol, name, shares, avgCost)
// Response: 201 Created with Holding
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.CreateHolding(model.Holding{
		Symbol:  req.Symbol,
		Name:    req.Name,
		Shares:  req.Shares,
		AvgCost: req.AvgCost,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateEntry.Error(), req.Symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update a holding's name, share
// count or average cost.
//
// Endpoint: PUT /api/holding/{symbol}
// Request Body: UpdateHoldingRequest
// Response: 200 OK with updated Holding
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the symbol is not tracked
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.UpdateHolding(model.Holding{
		Symbol:  symbol,
		Name:    req.Name,
		Shares:  req.Shares,
		AvgCost: req.AvgCost,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding and all
// records attached to its symbol.
//
// Endpoint: DELETE /api/holding/{symbol}
// Response: 204 No Content
// Error: 404 Not Found if the symbol is not tracked
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	if err := h.holdingService.DeleteHolding(symbol); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
