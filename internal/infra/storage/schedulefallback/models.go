package schedulefallback

import (
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/types"
)

// scheduleRecord формат записи расписания в локальном хранилище.
// Имена полей повторяют snake_case колонок удаленной БД, чтобы обе стороны
// границы хранения использовали одно соглашение.
type scheduleRecord struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	GroupType    string    `json:"group_type"`
	TimeSlot     string    `json:"time_slot"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// fromDomain конвертирует доменную модель в формат хранения
func fromDomain(sched *domain.GroupSchedule) scheduleRecord {
	rec := scheduleRecord{
		ID:           sched.ID.String(),
		CustomerID:   sched.CustomerID,
		CustomerName: sched.CustomerName,
		GroupType:    string(sched.Group),
		TimeSlot:     sched.TimeSlot.String(),
		StartDate:    sched.StartDate.Format(domain.DateFormat),
		IsActive:     sched.IsActive,
		CreatedAt:    sched.CreatedAt,
	}
	if sched.EndDate != nil {
		end := sched.EndDate.Format(domain.DateFormat)
		rec.EndDate = &end
	}
	return rec
}

// toDomain конвертирует запись хранения в доменную модель.
// Возвращает false для записи с нечитаемыми датами.
func (r scheduleRecord) toDomain() (*domain.GroupSchedule, bool) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, false
	}

	sched := &domain.GroupSchedule{
		ID:           domain.ParseScheduleID(r.ID),
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Group:        domain.GroupType(r.GroupType),
		TimeSlot:     types.TimeString(r.TimeSlot),
		StartDate:    startDate,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, false
		}
		sched.EndDate = &endDate
	}

	return sched, true
}
