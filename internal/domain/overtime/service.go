package overtime

import "context"

type OvertimeService interface {
	Request(ctx context.Context, userID string, req *RequestOvertimeRequest) (*OvertimeResponse, error)
	GetMine(ctx context.Context, userID string) (*ListResponse, error)
	GetByID(ctx context.Context, userID, overtimeID string, isAdmin bool) (*OvertimeResponse, error)
	Update(ctx context.Context, userID, overtimeID string, req *UpdateOvertimeRequest) (*OvertimeResponse, error)
	SetStatus(ctx context.Context, overtimeID string, req *SetStatusRequest) (*OvertimeResponse, error)
}
