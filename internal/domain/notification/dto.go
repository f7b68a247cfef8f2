package notification

import (
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token"`
}

func (r *RegisterDeviceRequest) Validate() error {
	if validator.IsEmpty(r.DeviceToken) {
		return validator.ValidationErrors{
			{Field: "device_token", Message: "device token is required"},
		}
	}
	return nil
}

type RegisterDeviceResponse struct {
	UserID      string `json:"user_id"`
	DeviceToken string `json:"device_token"`
}
