package get_customer_schedule

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type SchedulesService interface {
	FindActiveByCustomer(ctx context.Context, customerID string) (*domain.GroupSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
