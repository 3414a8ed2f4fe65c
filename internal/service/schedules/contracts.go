package schedules

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

// ScheduleRepository интерфейс удаленного репозитория расписаний
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.GroupSchedule, error)
	GetActiveByCustomer(ctx context.Context, customerID string) (*domain.GroupSchedule, error)
	GetActiveBySlot(ctx context.Context, group domain.GroupType, timeSlot string) ([]*domain.GroupSchedule, error)
	Update(ctx context.Context, id string, update domain.ScheduleUpdate) error
	Delete(ctx context.Context, id string) error
}

// FallbackRepository интерфейс локального резервного хранилища расписаний.
// Чтения не возвращают ошибок: недоступная коллекция - пустая.
type FallbackRepository interface {
	List() []*domain.GroupSchedule
	ListActiveBySlot(group domain.GroupType, timeSlot string) []*domain.GroupSchedule
	Remove(id domain.ScheduleID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
