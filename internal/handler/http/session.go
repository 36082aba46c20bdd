package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/presencelab/presence-gateway-go/internal/domain/session"
	"github.com/presencelab/presence-gateway-go/internal/handler/http/response"
)

// maxUploadBytes caps the spreadsheet upload size.
const maxUploadBytes = 20 << 20

type SessionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	CurrentView(w http.ResponseWriter, r *http.Request)
	Navigate(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
}

type SessionHandlerImpl struct {
	sessionService session.Service
}

// Create implements SessionHandler.
func (h *SessionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	resp, err := h.sessionService.Create(r.Context(), fileHeader.Filename, file)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Session created successfully", resp)
}

// Submit implements SessionHandler.
func (h *SessionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sid")

	resp, err := h.sessionService.Submit(r.Context(), sessionID)
	if err != nil {
		slog.Error("Analysis submission failed", "session_id", sessionID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Analysis completed", resp)
}

// CurrentView implements SessionHandler.
func (h *SessionHandlerImpl) CurrentView(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sessionService.CurrentView(chi.URLParam(r, "sid"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Navigate implements SessionHandler.
func (h *SessionHandlerImpl) Navigate(w http.ResponseWriter, r *http.Request) {
	var req session.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Navigate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.sessionService.Navigate(chi.URLParam(r, "sid"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// DownloadReport implements SessionHandler. The report body streams
// through untouched; only the filename header is the gateway's.
func (h *SessionHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sid")

	dl, err := h.sessionService.DownloadReport(r.Context(), sessionID)
	if err != nil {
		slog.Error("Report download failed", "session_id", sessionID, "error", err)
		response.HandleError(w, err)
		return
	}
	defer dl.Body.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+dl.FileName+`"`)
	if _, err := io.Copy(w, dl.Body); err != nil {
		slog.Error("Report stream interrupted", "session_id", sessionID, "error", err)
	}
}

func NewSessionHandler(sessionService session.Service) SessionHandler {
	return &SessionHandlerImpl{sessionService: sessionService}
}
