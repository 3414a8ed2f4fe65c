package update_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	customersService "github.com/mcozcn/salondesk/internal/service/customers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные данные клиента"
	msgCustomerNotFound   = "клиент не найден"
	msgUpdateFailed       = "не удалось сохранить изменения"
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

// Handle PATCH /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	var req UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), customerID, req.ToDomainUpdate()); err != nil {
		switch {
		case errors.Is(err, customersService.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, customersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("PATCH /customers/{id} - Failed: id=%s, error=%v", customerID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		}
		return
	}

	handlers.RespondNoContent(w)
}
