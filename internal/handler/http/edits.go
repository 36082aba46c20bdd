package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/presencelab/presence-gateway-go/internal/domain/session"
	"github.com/presencelab/presence-gateway-go/internal/handler/http/response"
)

type EditHandler interface {
	Propose(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Commit(w http.ResponseWriter, r *http.Request)
	Discard(w http.ResponseWriter, r *http.Request)
}

type EditHandlerImpl struct {
	sessionService session.Service
}

// Propose implements EditHandler.
func (h *EditHandlerImpl) Propose(w http.ResponseWriter, r *http.Request) {
	var req session.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Edit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.sessionService.ProposeEdit(chi.URLParam(r, "sid"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Pending implements EditHandler.
func (h *EditHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sessionService.PendingEdits(chi.URLParam(r, "sid"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Commit implements EditHandler.
func (h *EditHandlerImpl) Commit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sid")

	resp, err := h.sessionService.CommitEdits(r.Context(), sessionID)
	if err != nil {
		slog.Error("Edit commit failed", "session_id", sessionID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Modifications saved", resp)
}

// Discard implements EditHandler.
func (h *EditHandlerImpl) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.DiscardEdits(chi.URLParam(r, "sid")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pending modifications discarded", nil)
}

func NewEditHandler(sessionService session.Service) EditHandler {
	return &EditHandlerImpl{sessionService: sessionService}
}
