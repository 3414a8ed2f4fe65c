package get_slot_schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	listSchedules "github.com/mcozcn/salondesk/internal/api/handlers/list_schedules"
	schedulesService "github.com/mcozcn/salondesk/internal/service/schedules"
	"github.com/mcozcn/salondesk/pkg/types"
)

const (
	msgInvalidDayOfWeek = "некорректный номер дня недели, ожидается 0..7"
	msgInvalidTimeSlot  = "некорректный временной слот, ожидается HH:MM из каталога"
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

// Handle GET /api/v1/schedules/slot?dayOfWeek=1&timeSlot=14:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(r.URL.Query().Get("dayOfWeek"))
	if err != nil {
		h.logger.Warn("GET /schedules/slot - Invalid dayOfWeek: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	timeSlot, err := types.NewTimeStringFromString(r.URL.Query().Get("timeSlot"))
	if err != nil {
		h.logger.Warn("GET /schedules/slot - Invalid timeSlot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	}

	schedules, err := h.service.ForSlot(r.Context(), dayOfWeek, timeSlot)
	if err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrInvalidWeekday):
			h.logger.Warn("GET /schedules/slot - Invalid dayOfWeek=%d", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedulesService.ErrUnknownTimeSlot):
			h.logger.Warn("GET /schedules/slot - Unknown timeSlot=%s", timeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("GET /schedules/slot - Failed: dayOfWeek=%d, timeSlot=%s, error=%v",
				dayOfWeek, timeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listSchedules.FromDomainScheduleList(schedules))
}
