package enroll_schedule

import (
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/types"
)

// Request модель запроса на запись клиента в группу
type Request struct {
	CustomerID   string           // ID клиента
	CustomerName string           // Имя клиента (денормализуется в запись)
	Group        domain.GroupType // Группа A или B
	TimeSlot     types.TimeString // Временной слот из каталога ("14:00")
	StartDate    time.Time        // Дата начала занятий
}

// Response модель ответа с созданной записью расписания
type Response struct {
	ID           string           // Идентификатор (с префиксом для локальных)
	CustomerID   string           // ID клиента
	CustomerName string           // Имя клиента
	Group        domain.GroupType // Группа
	TimeSlot     types.TimeString // Временной слот
	StartDate    time.Time        // Дата начала
	IsActive     bool             // Запись занимает место
	CreatedAt    time.Time        // Время создания
	LocalOrigin  bool             // true, если запись попала в локальный резерв
}

// fromDomain конвертирует доменную модель в response
func fromDomain(sched *domain.GroupSchedule) *Response {
	return &Response{
		ID:           sched.ID.String(),
		CustomerID:   sched.CustomerID,
		CustomerName: sched.CustomerName,
		Group:        sched.Group,
		TimeSlot:     sched.TimeSlot,
		StartDate:    sched.StartDate,
		IsActive:     sched.IsActive,
		CreatedAt:    sched.CreatedAt,
		LocalOrigin:  sched.ID.IsLocal(),
	}
}
