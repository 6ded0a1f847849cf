package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizsupportc/teamtrack-backend-go/internal/domain/pod"
	"github.com/bizsupportc/teamtrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type podHandlerImpl struct {
	podService pod.PodService
}

func NewPodHandler(podService pod.PodService) PodHandler {
	return &podHandlerImpl{
		podService: podService,
	}
}

// Create implements PodHandler.
func (h *podHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req pod.CreatePodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create pod request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.podService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pod created", p)
}

// List implements PodHandler.
func (h *podHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	pods, err := h.podService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pods)
}

// Delete implements PodHandler.
func (h *podHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.podService.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pod deleted", nil)
}
