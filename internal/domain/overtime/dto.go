package overtime

import (
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

type RequestOvertimeRequest struct {
	OvertimeDate string  `json:"overtime_date"` // dd-MM-yyyy
	StartTime    string  `json:"start_time"`    // HH:mm:ss
	EndTime      string  `json:"end_time"`      // HH:mm:ss
	Duration     float64 `json:"duration"`      // hours
	Objective    string  `json:"objective"`
}

func (r *RequestOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OvertimeDate) {
		errs = append(errs, validator.ValidationError{Field: "overtime_date", Message: "overtime date is required"})
	} else if _, ok := validator.IsValidDate(r.OvertimeDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "overtime_date", Message: "overtime date must be in dd-MM-yyyy format"})
	}

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time is required"})
	} else if _, ok := validator.IsValidTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be in HH:mm:ss format"})
	}

	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time is required"})
	} else if _, ok := validator.IsValidTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be in HH:mm:ss format"})
	}

	if r.Duration <= 0 {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be greater than zero"})
	}

	if validator.IsEmpty(r.Objective) {
		errs = append(errs, validator.ValidationError{Field: "objective", Message: "objective is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOvertimeRequest struct {
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	Objective *string  `json:"objective,omitempty"`
}

func (r *UpdateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil {
		if _, ok := validator.IsValidTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be in HH:mm:ss format"})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be in HH:mm:ss format"})
		}
	}
	if r.Duration != nil && *r.Duration <= 0 {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be greater than zero"})
	}
	if r.Objective != nil && validator.IsEmpty(*r.Objective) {
		errs = append(errs, validator.ValidationError{Field: "objective", Message: "objective cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return ErrInvalidStatus
	}
	return nil
}

type OvertimeResponse struct {
	OvertimeID   string  `json:"overtime_id"`
	UserID       string  `json:"user_id"`
	OvertimeDate string  `json:"overtime_date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Duration     float64 `json:"duration"`
	IsWeekday    bool    `json:"is_weekday"`
	Objective    string  `json:"objective"`
	Status       string  `json:"status"`
}

type ListResponse struct {
	OvertimeRequests []OvertimeResponse `json:"overtime_requests"`
}
