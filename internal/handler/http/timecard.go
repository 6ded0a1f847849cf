package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/timecard"
	"github.com/bizsupportc/teamtrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeCardHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type timeCardHandlerImpl struct {
	timeCardService timecard.TimeCardService
}

func NewTimeCardHandler(timeCardService timecard.TimeCardService) TimeCardHandler {
	return &timeCardHandlerImpl{
		timeCardService: timeCardService,
	}
}

// ClockIn implements TimeCardHandler.
func (h *timeCardHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timecard.ClockInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode clock-in request", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	tc, err := h.timeCardService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", tc)
}

// ClockOut implements TimeCardHandler.
func (h *timeCardHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	tc, err := h.timeCardService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", tc)
}

// Today implements TimeCardHandler.
func (h *timeCardHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	tc, err := h.timeCardService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tc)
}

// History implements TimeCardHandler.
func (h *timeCardHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := timecard.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	items, err := h.timeCardService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// List implements TimeCardHandler.
func (h *timeCardHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timecard.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	items, err := h.timeCardService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// ListForEmployee implements TimeCardHandler.
func (h *timeCardHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	filter := timecard.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	items, err := h.timeCardService.ListForEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Review implements TimeCardHandler.
func (h *timeCardHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req timecard.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode review request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	tc, err := h.timeCardService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timecard reviewed", tc)
}
