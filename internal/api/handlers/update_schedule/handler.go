package update_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcozcn/salondesk/internal/api/handlers"
	"github.com/mcozcn/salondesk/internal/domain"
	schedulesService "github.com/mcozcn/salondesk/internal/service/schedules"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля обновления"
	msgScheduleNotFound   = "запись расписания не найдена"
	msgLocalImmutable     = "запись создана в автономном режиме и не может быть изменена до сверки с базой"
	msgUpdateFailed       = "не удалось сохранить изменения"
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

// Handle PATCH /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID := domain.ParseScheduleID(mux.Vars(r)["scheduleId"])

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	if err := h.service.Update(r.Context(), scheduleID, update); err != nil {
		switch {
		case errors.Is(err, schedulesService.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedulesService.ErrLocalRecordImmutable):
			h.logger.Warn("PATCH /schedules/{id} - Local-origin schedule id=%s", scheduleID)
			handlers.RespondError(w, http.StatusConflict, msgLocalImmutable)

		case errors.Is(err, schedulesService.ErrInvalidInput),
			errors.Is(err, schedulesService.ErrUnknownTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			// Причина (сеть или доступ) для оператора не различима - ответ общий
			h.logger.Error("PATCH /schedules/{id} - Failed: id=%s, error=%v", scheduleID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpdateFailed)
		}
		return
	}

	handlers.RespondNoContent(w)
}
