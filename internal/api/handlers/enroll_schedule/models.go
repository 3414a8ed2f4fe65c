package enroll_schedule

import (
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
	enrollSchedule "github.com/mcozcn/salondesk/internal/usecase/enroll_schedule"
	"github.com/mcozcn/salondesk/pkg/types"
)

// EnrollScheduleRequest HTTP request model
type EnrollScheduleRequest struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Group        string `json:"group"`     // "A" или "B"
	TimeSlot     string `json:"timeSlot"`  // "14:00"
	StartDate    string `json:"startDate"` // "2025-10-15"
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Group        string  `json:"group"`
	TimeSlot     string  `json:"timeSlot"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate,omitempty"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
	LocalOrigin  bool    `json:"localOrigin"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EnrollScheduleRequest) ToUseCaseRequest() (*enrollSchedule.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &enrollSchedule.Request{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Group:        domain.GroupType(r.Group),
		TimeSlot:     timeSlot,
		StartDate:    startDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *enrollSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:           resp.ID,
		CustomerID:   resp.CustomerID,
		CustomerName: resp.CustomerName,
		Group:        string(resp.Group),
		TimeSlot:     resp.TimeSlot.String(),
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		IsActive:     resp.IsActive,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		LocalOrigin:  resp.LocalOrigin,
	}
}
