package delete_schedule

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type SchedulesService interface {
	Delete(ctx context.Context, id domain.ScheduleID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
