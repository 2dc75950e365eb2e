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

// DCAHandler handles HTTP requests for dollar-cost-averaging contribution records.
type DCAHandler struct {
	dcaService *service.DCAService
}

// NewDCAHandler creates a new DCAHandler with the provided service dependency.
func NewDCAHandler(dcaService *service.DCAService) *DCAHandler {
	return &DCAHandler{
		dcaService: dcaService,
	}
}

// Records handles GET requests to retrieve all contribution records.
//
// Endpoint: GET /api/dca
// Response: 200 OK with array of DCARecord
func (h *DCAHandler) Records(w http.ResponseWriter, _ *http.Request) {
	records, err := h.dcaService.GetAllRecords()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDCA.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// Total handles GET requests for the lifetime contributed amount.
//
// Endpoint: GET /api/dca/total
// Response: 200 OK with {"total": <amount>}
func (h *DCAHandler) Total(w http.ResponseWriter, _ *http.Request) {
	total, err := h.dcaService.Total()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDCA.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"total": total})
}

// CreateRecord handles POST requests to record a contribution.
//
// Endpoint: POST /api/dca
// Request Body: CreateDCARecordRequest (symbol, date, amount)
// Response: 201 Created with DCARecord
// Error: 400 Bad Request if validation fails or the symbol is not tracked
func (h *DCAHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDCARecordRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDCARecord(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.dcaService.CreateRecord(model.DCARecord{
		Symbol: req.Symbol,
		Date:   req.Date,
		Amount: req.Amount,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownSymbol) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownSymbol.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create contribution record", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// DeleteRecord handles DELETE requests to remove a contribution record.
//
// Endpoint: DELETE /api/dca/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the record does not exist
func (h *DCAHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "uuid")

	if err := h.dcaService.DeleteRecord(recordID); err != nil {
		if errors.Is(err, apperrors.ErrDCARecordNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDCARecordNotFound.Error(), recordID)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete contribution record", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
