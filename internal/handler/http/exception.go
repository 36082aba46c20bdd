package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/presencelab/presence-gateway-go/internal/domain/session"
	"github.com/presencelab/presence-gateway-go/internal/handler/http/response"
)

type ExceptionHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	ToggleRestDay(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	SetHolidayDate(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
	AddLeavePeriod(w http.ResponseWriter, r *http.Request)
	UpdateLeavePeriod(w http.ResponseWriter, r *http.Request)
	RemoveLeavePeriod(w http.ResponseWriter, r *http.Request)
	SetContractEnd(w http.ResponseWriter, r *http.Request)
}

type ExceptionHandlerImpl struct {
	sessionService session.Service
}

// Get implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sessionService.Exceptions(chi.URLParam(r, "sid"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snap)
}

// ToggleRestDay implements ExceptionHandler.
func (h *ExceptionHandlerImpl) ToggleRestDay(w http.ResponseWriter, r *http.Request) {
	var req session.RestDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rest day decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snap, err := h.sessionService.ToggleRestDay(chi.URLParam(r, "sid"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snap)
}

// AddHoliday implements ExceptionHandler.
func (h *ExceptionHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	holiday, err := h.sessionService.AddHoliday(chi.URLParam(r, "sid"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday added", holiday)
}

// SetHolidayDate implements ExceptionHandler.
func (h *ExceptionHandlerImpl) SetHolidayDate(w http.ResponseWriter, r *http.Request) {
	var req session.HolidayDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Holiday date decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	err := h.sessionService.SetHolidayDate(chi.URLParam(r, "sid"), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday updated", nil)
}

// RemoveHoliday implements ExceptionHandler.
func (h *ExceptionHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	err := h.sessionService.RemoveHoliday(chi.URLParam(r, "sid"), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday removed", nil)
}

// AddLeavePeriod implements ExceptionHandler.
func (h *ExceptionHandlerImpl) AddLeavePeriod(w http.ResponseWriter, r *http.Request) {
	period, err := h.sessionService.AddLeavePeriod(chi.URLParam(r, "sid"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave period added", period)
}

// UpdateLeavePeriod implements ExceptionHandler.
func (h *ExceptionHandlerImpl) UpdateLeavePeriod(w http.ResponseWriter, r *http.Request) {
	var req session.LeaveFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Leave period decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	err := h.sessionService.UpdateLeavePeriod(chi.URLParam(r, "sid"), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave period updated", nil)
}

// RemoveLeavePeriod implements ExceptionHandler.
func (h *ExceptionHandlerImpl) RemoveLeavePeriod(w http.ResponseWriter, r *http.Request) {
	err := h.sessionService.RemoveLeavePeriod(chi.URLParam(r, "sid"), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave period removed", nil)
}

// SetContractEnd implements ExceptionHandler.
func (h *ExceptionHandlerImpl) SetContractEnd(w http.ResponseWriter, r *http.Request) {
	var req session.ContractEndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Contract end decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snap, err := h.sessionService.SetContractEnd(chi.URLParam(r, "sid"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snap)
}

func NewExceptionHandler(sessionService session.Service) ExceptionHandler {
	return &ExceptionHandlerImpl{sessionService: sessionService}
}
