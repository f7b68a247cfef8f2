package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendhub/attendance-backend-go/internal/domain/overtime"
	"github.com/attendhub/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OvertimeHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Request implements OvertimeHandler.
func (h *overtimeHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req overtime.RequestOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.overtimeService.Request(r.Context(), userID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp)
}

// GetMine implements OvertimeHandler.
func (h *overtimeHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.overtimeService.GetMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements OvertimeHandler.
func (h *overtimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	overtimeID := chi.URLParam(r, "id")
	if uuid.Validate(overtimeID) != nil {
		response.HandleError(w, overtime.ErrOvertimeNotFound)
		return
	}

	resp, err := h.overtimeService.GetByID(r.Context(), userID, overtimeID, isAdminRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements OvertimeHandler.
func (h *overtimeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	overtimeID := chi.URLParam(r, "id")
	if uuid.Validate(overtimeID) != nil {
		response.HandleError(w, overtime.ErrOvertimeNotFound)
		return
	}

	var req overtime.UpdateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.overtimeService.Update(r.Context(), userID, overtimeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SetStatus implements OvertimeHandler.
func (h *overtimeHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	overtimeID := chi.URLParam(r, "id")
	if uuid.Validate(overtimeID) != nil {
		response.HandleError(w, overtime.ErrOvertimeNotFound)
		return
	}

	var req overtime.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.overtimeService.SetStatus(r.Context(), overtimeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
