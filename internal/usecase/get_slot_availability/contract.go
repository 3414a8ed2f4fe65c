package get_slot_availability

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/types"
)

// ScheduleProvider источник записей расписания по слоту.
// Реализуется менеджером расписаний, включая его резервный путь чтения.
type ScheduleProvider interface {
	ForSlot(ctx context.Context, dayOfWeek int, timeSlot types.TimeString) ([]*domain.GroupSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
