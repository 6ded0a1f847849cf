package http

import (
	"net/http"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/dashboard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	PodStats(w http.ResponseWriter, r *http.Request)
	EmployeeStatuses(w http.ResponseWriter, r *http.Request)
	PodCalendar(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// PodStats implements DashboardHandler.
func (h *dashboardHandlerImpl) PodStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.PodStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// EmployeeStatuses implements DashboardHandler.
func (h *dashboardHandlerImpl) EmployeeStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.dashboardService.EmployeeStatuses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, statuses)
}

// PodCalendar implements DashboardHandler.
func (h *dashboardHandlerImpl) PodCalendar(w http.ResponseWriter, r *http.Request) {
	req := dashboard.PodCalendarRequest{
		PodName:   r.URL.Query().Get("pod_name"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	days, err := h.dashboardService.PodAttendanceCalendar(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}
