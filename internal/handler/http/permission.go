package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendhub/attendance-backend-go/internal/domain/permission"
	"github.com/attendhub/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PermissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type permissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &permissionHandlerImpl{
		permissionService: permissionService,
	}
}

// Create implements PermissionHandler.
func (h *permissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req permission.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.permissionService.Create(r.Context(), userID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp)
}

// GetMine implements PermissionHandler.
func (h *permissionHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.permissionService.GetMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements PermissionHandler.
func (h *permissionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	permissionID := chi.URLParam(r, "id")
	if uuid.Validate(permissionID) != nil {
		response.HandleError(w, permission.ErrPermissionNotFound)
		return
	}

	resp, err := h.permissionService.GetByID(r.Context(), userID, permissionID, isAdminRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SetStatus implements PermissionHandler.
func (h *permissionHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	permissionID := chi.URLParam(r, "id")
	if uuid.Validate(permissionID) != nil {
		response.HandleError(w, permission.ErrPermissionNotFound)
		return
	}

	var req permission.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.permissionService.SetStatus(r.Context(), permissionID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
