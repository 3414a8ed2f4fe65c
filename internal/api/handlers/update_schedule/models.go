package update_schedule

import (
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/types"
)

// UpdateScheduleRequest HTTP request model.
// Все поля опциональны - применяются только переданные.
// Деактивация: {"isActive": false, "endDate": "2025-10-15"}.
type UpdateScheduleRequest struct {
	CustomerName *string `json:"customerName,omitempty"`
	Group        *string `json:"group,omitempty"`
	TimeSlot     *string `json:"timeSlot,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// ToDomainUpdate конвертирует HTTP запрос в доменную модель обновления
func (r *UpdateScheduleRequest) ToDomainUpdate() (domain.ScheduleUpdate, error) {
	update := domain.ScheduleUpdate{
		CustomerName: r.CustomerName,
		IsActive:     r.IsActive,
	}

	if r.Group != nil {
		group := domain.GroupType(*r.Group)
		update.Group = &group
	}

	if r.TimeSlot != nil {
		timeSlot, err := types.NewTimeStringFromString(*r.TimeSlot)
		if err != nil {
			return domain.ScheduleUpdate{}, err
		}
		update.TimeSlot = &timeSlot
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return domain.ScheduleUpdate{}, err
		}
		update.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return domain.ScheduleUpdate{}, err
		}
		update.EndDate = &endDate
	}

	return update, nil
}
