package create_customer

import (
	"context"

	"github.com/mcozcn/salondesk/internal/domain"
)

type CustomersService interface {
	Create(ctx context.Context, cust *domain.Customer) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
