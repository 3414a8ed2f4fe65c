package create_customer

import (
	"errors"
	"net/http"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	listCustomers "github.com/mcozcn/salondesk/internal/api/handlers/list_customers"
	"github.com/mcozcn/salondesk/internal/domain"
	customersService "github.com/mcozcn/salondesk/internal/service/customers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCustomer    = "некорректные данные клиента"
)

// CreateCustomerRequest HTTP request model
type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type Handler struct {
	service CustomersService
	logger  Logger
}

func NewHandler(service CustomersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &domain.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, customersService.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)

		default:
			h.logger.Error("POST /customers - Failed to create customer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Created: customer_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, listCustomers.FromDomainCustomer(created))
}
