package list_schedules

import (
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
)

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

// ScheduleListResponse список записей расписания
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

// FromDomainSchedule конвертирует доменную модель в HTTP response
func FromDomainSchedule(sched *domain.GroupSchedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:           sched.ID.String(),
		CustomerID:   sched.CustomerID,
		CustomerName: sched.CustomerName,
		Group:        string(sched.Group),
		TimeSlot:     sched.TimeSlot.String(),
		StartDate:    sched.StartDate.Format(domain.DateFormat),
		IsActive:     sched.IsActive,
		CreatedAt:    sched.CreatedAt.Format(time.RFC3339),
		LocalOrigin:  sched.ID.IsLocal(),
	}
	if sched.EndDate != nil {
		end := sched.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}
	return resp
}

// FromDomainScheduleList конвертирует список доменных моделей в HTTP response
func FromDomainScheduleList(schedules []*domain.GroupSchedule) *ScheduleListResponse {
	items := make([]ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		items = append(items, FromDomainSchedule(sched))
	}
	return &ScheduleListResponse{
		Schedules: items,
		Total:     len(items),
	}
}
