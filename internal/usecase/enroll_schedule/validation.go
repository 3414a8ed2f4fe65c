package enroll_schedule

import (
	"fmt"
	"strings"

	"github.com/mcozcn/salondesk/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if !req.Group.IsValid() {
		return fmt.Errorf("%w: unknown group %q", ErrInvalidInput, req.Group)
	}

	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: time slot %q is not in the catalog", ErrInvalidInput, req.TimeSlot)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	return nil
}
