package http

import (
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AdminDashboard(w http.ResponseWriter, r *http.Request)
	EmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// AdminDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// EmployeeDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.dashboardService.EmployeeDashboard(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
