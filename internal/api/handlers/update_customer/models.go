package update_customer

import "github.com/mcozcn/salondesk/internal/domain"

// UpdateCustomerRequest - частичное обновление данных клиента
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ToDomainUpdate переводит запрос в доменную модель обновления
func (r *UpdateCustomerRequest) ToDomainUpdate() domain.CustomerUpdate {
	return domain.CustomerUpdate{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
	}
}
