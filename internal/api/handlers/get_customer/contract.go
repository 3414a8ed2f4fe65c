package get_customer

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type CustomersService interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
