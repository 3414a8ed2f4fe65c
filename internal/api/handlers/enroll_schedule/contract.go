package enroll_schedule

import (
	"context"

	enrollSchedule "github.com/mcozcn/salondesk/internal/usecase/enroll_schedule"
)

type EnrollScheduleUseCase interface {
	Execute(ctx context.Context, req *enrollSchedule.Request) (*enrollSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
