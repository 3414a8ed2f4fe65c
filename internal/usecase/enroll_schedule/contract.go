package enroll_schedule

import (
	"context"
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
)

// ScheduleRepository интерфейс удаленного репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, sched *domain.GroupSchedule) (*domain.GroupSchedule, error)
	GetActiveBySlot(ctx context.Context, group domain.GroupType, timeSlot string) ([]*domain.GroupSchedule, error)
}

// FallbackRepository интерфейс локального резервного хранилища расписаний
type FallbackRepository interface {
	Append(sched *domain.GroupSchedule) error
	ListActiveBySlot(group domain.GroupType, timeSlot string) []*domain.GroupSchedule
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор идентификаторов для записей локального происхождения
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
