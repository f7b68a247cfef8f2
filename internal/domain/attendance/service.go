package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, userID string) (*CheckInResponse, error)
	CheckOut(ctx context.Context, userID string) (*CheckOutResponse, error)
	GetHistory(ctx context.Context, userID string, filter HistoryFilter) (*HistoryResponse, error)
	GetByDate(ctx context.Context, userID string, date *string) (*HistoryResponse, error)
}
