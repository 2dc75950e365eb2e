package handlers

import (
	"net/http"

	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/response"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/apperrors"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/service"
)

// DashboardHandler handles HTTP requests for the computed dashboard views.
// It serves as the HTTP layer adapter, delegating all loading and
// calculation to the dashboardService.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard handles GET requests for the full dashboard: per-ETF valuation
// rows, portfolio totals, the year-over-year dividend comparison, the
// contribution comparison and the goal progress figures.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with Dashboard
// Error: 500 Internal Server Error if any snapshot load fails
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.BuildDashboard(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, dashboard)
}

// FillProgress handles GET requests for the dividend fill estimates.
// Instruments without dividend history or without a resolvable pre-ex
// close are omitted from the result, not errors.
//
// Endpoint: GET /api/dashboard/fill
// Response: 200 OK with array of FillInfo
// Error: 500 Internal Server Error if a snapshot load fails
func (h *DashboardHandler) FillProgress(w http.ResponseWriter, r *http.Request) {
	fills, err := h.dashboardService.FillProgress(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, fills)
}
