package enroll_schedule

import (
	"errors"
	"net/http"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	enrollSchedule "github.com/mcozcn/salondesk/internal/usecase/enroll_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные записи"
	msgSlotFull           = "в выбранной группе и времени нет свободных мест"
)

type Handler struct {
	useCase EnrollScheduleUseCase
	logger  Logger
}

func NewHandler(useCase EnrollScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EnrollScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, enrollSchedule.ErrSlotCapacityExceeded):
			// Сообщение называет группу и слот - оператор должен видеть,
			// какая именно пара заполнена
			h.logger.Warn("POST /schedules - Slot full: customer=%s, group=%s, slot=%s",
				req.CustomerID, req.Group, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull+": группа "+req.Group+", "+req.TimeSlot)

		case errors.Is(err, enrollSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: customer=%s: %v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules - Failed to enroll: customer=%s, error=%v", req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Enrolled: schedule_id=%s, customer=%s, local_origin=%t",
		result.ID, req.CustomerID, result.LocalOrigin)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
