package list_customers

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type CustomersService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
