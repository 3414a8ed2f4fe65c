package get_slot_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	getSlotAvailability "github.com/mcozcn/salondesk/internal/usecase/get_slot_availability"
)

const (
	msgInvalidDayOfWeek = "некорректный номер дня недели, ожидается 0..7"
)

type Handler struct {
	useCase GetSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/availability?dayOfWeek=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(r.URL.Query().Get("dayOfWeek"))
	if err != nil {
		h.logger.Warn("GET /schedules/availability - Invalid dayOfWeek: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotAvailability.Request{DayOfWeek: dayOfWeek})
	if err != nil {
		switch {
		case errors.Is(err, getSlotAvailability.ErrInvalidInput):
			h.logger.Warn("GET /schedules/availability - Invalid dayOfWeek=%d", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("GET /schedules/availability - Failed: dayOfWeek=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
