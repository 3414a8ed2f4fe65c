package get_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	listCustomers "github.com/mcozcn/salondesk/internal/api/handlers/list_customers"
	customersService "github.com/mcozcn/salondesk/internal/service/customers"
)

const (
	msgCustomerNotFound = "клиент не найден"
	msgMissingCustomer  = "не указан идентификатор клиента"
)

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

// Handle GET /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	cust, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customersService.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, customersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCustomer)

		default:
			h.logger.Error("GET /customers/{id} - Failed: id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listCustomers.FromDomainCustomer(cust))
}
