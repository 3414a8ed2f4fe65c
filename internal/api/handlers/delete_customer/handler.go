package delete_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	customersService "github.com/mcozcn/salondesk/internal/service/customers"
)

const (
	msgCustomerNotFound = "клиент не найден"
	msgDeleteFailed     = "не удалось удалить клиента"
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

// Handle DELETE /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		switch {
		case errors.Is(err, customersService.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("DELETE /customers/{id} - Failed: id=%s, error=%v", customerID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDeleteFailed)
		}
		return
	}

	handlers.RespondNoContent(w)
}
