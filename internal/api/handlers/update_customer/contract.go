package update_customer

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type CustomersService interface {
	Update(ctx context.Context, id string, update domain.CustomerUpdate) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
