package get_customer_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	listSchedules "github.com/mcozcn/salondesk/internal/api/handlers/list_schedules"
	schedulesService "github.com/mcozcn/salondesk/internal/service/schedules"
)

const (
	msgScheduleNotFound = "у клиента нет активной записи в группу"
	msgMissingCustomer  = "не указан идентификатор клиента"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]
	if customerID == "" {
		handlers.RespondBadRequest(w, msgMissingCustomer)
		return
	}

	sched, err := h.service.FindActiveByCustomer(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedulesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCustomer)

		default:
			// Точечный поиск не имеет локального резерва - ошибка уходит наверх
			h.logger.Error("GET /customers/{id}/schedule - Failed: customer=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listSchedules.FromDomainSchedule(sched))
}
