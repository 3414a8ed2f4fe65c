package update_schedule

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type SchedulesService interface {
	Update(ctx context.Context, id domain.ScheduleID, update domain.ScheduleUpdate) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
