package list_customers

import (
	"time"

	"github.com/mcozcn/salondesk/internal/domain"
)

// CustomerResponse HTTP response model
type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CustomerListResponse список клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}

// FromDomainCustomer конвертирует доменную модель в HTTP response
func FromDomainCustomer(cust *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        cust.ID,
		Name:      cust.Name,
		Phone:     cust.Phone,
		Email:     cust.Email,
		Notes:     cust.Notes,
		CreatedAt: cust.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cust.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCustomerList конвертирует список доменных моделей в HTTP response
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	items := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		items = append(items, FromDomainCustomer(cust))
	}
	return &CustomerListResponse{
		Customers: items,
		Total:     len(items),
	}
}
