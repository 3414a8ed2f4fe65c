package get_slot_schedules

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
	"github.com/mcozcn/salondesk/pkg/types"
)

type SchedulesService interface {
	ForSlot(ctx context.Context, dayOfWeek int, timeSlot types.TimeString) ([]*domain.GroupSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
