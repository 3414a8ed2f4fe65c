package list_schedules

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type SchedulesService interface {
	List(ctx context.Context) ([]*domain.GroupSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
