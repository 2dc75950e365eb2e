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

// LedgerHandler handles HTTP requests for the buy-transaction ledger.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler with the provided service dependency.
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Entries handles GET requests to retrieve the raw ledger.
//
// Endpoint: GET /api/ledger
// Response: 200 OK with array of LedgerEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *LedgerHandler) Entries(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.ledgerService.GetAllEntries()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLedger.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// Aggregate handles GET requests for the per-symbol ledger sums: the same
// figures the position merge consumes.
//
// Endpoint: GET /api/ledger/aggregate
// Response: 200 OK with map of symbol -> LedgerAggregate
// Error: 500 Internal Server Error if aggregation fails
func (h *LedgerHandler) Aggregate(w http.ResponseWriter, _ *http.Request) {
	aggregates, err := h.ledgerService.Aggregate()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLedger.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, aggregates)
}

// CreateEntry handles POST requests to record a buy.
//
// Endpoint: POST /api/ledger
// Request Body: CreateLedgerEntryRequest (symbol, date, shares, amount, reinvested)
// Response: 201 Created with LedgerEntry
// Error: 400 Bad Request if validation fails or the symbol is not tracked
// Error: 500 Internal Server Error if creation fails
func (h *LedgerHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateLedgerEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateLedgerEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.ledgerService.CreateEntry(model.LedgerEntry{
		Symbol:     req.Symbol,
		Date:       req.Date,
		Shares:     req.Shares,
		Amount:     req.Amount,
		Reinvested: req.Reinvested,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownSymbol) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownSymbol.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create ledger entry", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// UpdateEntry handles PUT requests to edit a ledger entry.
//
// Endpoint: PUT /api/ledger/{uuid}
// Request Body: UpdateLedgerEntryRequest
// Response: 200 OK with updated LedgerEntry
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the entry does not exist
func (h *LedgerHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateLedgerEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateLedgerEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.ledgerService.UpdateEntry(model.LedgerEntry{
		ID:         entryID,
		Symbol:     req.Symbol,
		Date:       req.Date,
		Shares:     req.Shares,
		Amount:     req.Amount,
		Reinvested: req.Reinvested,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLedgerEntryNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLedgerEntryNotFound.Error(), entryID)
		case errors.Is(err, apperrors.ErrUnknownSymbol):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownSymbol.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update ledger entry", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE requests to remove a ledger entry.
//
// Endpoint: DELETE /api/ledger/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the entry does not exist
func (h *LedgerHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	if err := h.ledgerService.DeleteEntry(entryID); err != nil {
		if errors.Is(err, apperrors.ErrLedgerEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLedgerEntryNotFound.Error(), entryID)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete ledger entry", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
