package permission

import "context"

type PermissionService interface {
	Create(ctx context.Context, userID string, req *CreatePermissionRequest) (*PermissionResponse, error)
	GetMine(ctx context.Context, userID string) (*ListResponse, error)
	GetByID(ctx context.Context, userID, permissionID string, isAdmin bool) (*PermissionResponse, error)
	SetStatus(ctx context.Context, permissionID string, req *SetStatusRequest) (*PermissionResponse, error)
}
