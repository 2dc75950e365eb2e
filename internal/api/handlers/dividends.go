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

// DividendHandler handles HTTP requests for dividend events.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// Dividends handles GET requests to retrieve all dividend events.
//
// Endpoint: GET /api/dividend
// Response: 200 OK with array of DividendEvent
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Dividends(w http.ResponseWriter, _ *http.Request) {
	dividends, err := h.dividendService.GetAllDividends()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, dividends)
}

// CreateDividend handles POST requests to record a cash dividend.
//
// Endpoint: POST /api/dividend
// Request Body: CreateDividendRequest (symbol, date, cash, and optionally note)
// Response: 201 Created with DividendEvent
// Error: 400 Bad Request if validation fails or the symbol is not tracked
// Error: 500 Internal Server Error if creation fails
func (h *DividendHandler) CreateDividend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	dividend, err := h.dividendService.CreateDividend(model.DividendEvent{
		Symbol: req.Symbol,
		Date:   req.Date,
		Cash:   req.Cash,
		Note:   req.Note,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownSymbol) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownSymbol.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create dividend", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, dividend)
}

// UpdateDividend handles PUT requests to edit a dividend event.
//
// Endpoint: PUT /api/dividend/{uuid}
// Request Body: UpdateDividendRequest
// Response: 200 OK with updated DividendEvent
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the event does not exist
func (h *DividendHandler) UpdateDividend(w http.ResponseWriter, r *http.Request) {
	dividendID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	dividend, err := h.dividendService.UpdateDividend(model.DividendEvent{
		ID:     dividendID,
		Symbol: req.Symbol,
		Date:   req.Date,
		Cash:   req.Cash,
		Note:   req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDividendNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDividendNotFound.Error(), dividendID)
		case errors.Is(err, apperrors.ErrUnknownSymbol):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownSymbol.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update dividend", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, dividend)
}

// DeleteDividend handles DELETE requests to remove a dividend event.
//
// Endpoint: DELETE /api/dividend/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the event does not exist
func (h *DividendHandler) DeleteDividend(w http.ResponseWriter, r *http.Request) {
	dividendID := chi.URLParam(r, "uuid")

	if err := h.dividendService.DeleteDividend(dividendID); err != nil {
		if errors.Is(err, apperrors.ErrDividendNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDividendNotFound.Error(), dividendID)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete dividend", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
