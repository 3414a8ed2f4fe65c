package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	"github.com/mcozcn/salondesk/internal/domain"
	schedulesService "github.com/mcozcn/salondesk/internal/service/schedules"
)

const (
	msgScheduleNotFound = "запись расписания не найдена"
	msgDeleteFailed     = "не удалось удалить запись"
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

// Handle DELETE /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID := domain.ParseScheduleID(mux.Vars(r)["scheduleId"])

	if err := h.service.Delete(r.Context(), scheduleID); err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed: id=%s, error=%v", scheduleID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDeleteFailed)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Removed: id=%s", scheduleID)
	handlers.RespondNoContent(w)
}
