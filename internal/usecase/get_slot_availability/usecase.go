package get_slot_availability

import (
	"context"
	"fmt"

	"github.com/mcozcn/salondesk/internal/domain"
)

// UseCase use case построения сетки занятости: сколько мест занято и свободно
// в каждом слоте каталога на выбранный день недели.
// Используется формой записи в группу и календарным видом стойки.
type UseCase struct {
	schedules ScheduleProvider
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedules ScheduleProvider, logger Logger) *UseCase {
	return &UseCase{
		schedules: schedules,
		logger:    logger,
	}
}

// Execute выполняет use case построения сетки занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotAvailability: dayOfWeek=%d", req.DayOfWeek)

	// 1. Валидация дня недели
	if req.DayOfWeek < 0 || req.DayOfWeek > 7 {
		uc.logger.Warn("GetSlotAvailability: invalid dayOfWeek=%d", req.DayOfWeek)
		return nil, fmt.Errorf("%w: dayOfWeek must be within 0..7", ErrInvalidInput)
	}

	// 2. Воскресенье: занятий нет, сетка пустая
	group, ok := domain.GroupForWeekday(req.DayOfWeek)
	if !ok {
		return &Response{
			DayOfWeek: req.DayOfWeek,
			Group:     "",
			Slots:     []Slot{},
		}, nil
	}

	// 3. Считаем занятость по каждому слоту каталога
	catalog := domain.TimeSlots()
	slots := make([]Slot, 0, len(catalog))

	for _, timeSlot := range catalog {
		occupied, err := uc.schedules.ForSlot(ctx, req.DayOfWeek, timeSlot)
		if err != nil {
			uc.logger.Error("GetSlotAvailability: failed to read slot %s: %v", timeSlot, err)
			return nil, fmt.Errorf("%w: failed to read slot %s: %v", ErrInternal, timeSlot, err)
		}

		occupancy := domain.SlotOccupancy{
			TimeSlot:    timeSlot,
			Group:       group,
			ActiveCount: len(occupied),
			Capacity:    domain.SlotCapacity,
		}

		slots = append(slots, Slot{
			TimeSlot:       timeSlot,
			ActiveCount:    occupancy.ActiveCount,
			AvailableSeats: occupancy.AvailableSeats(),
			Capacity:       occupancy.Capacity,
		})
	}

	uc.logger.Info("GetSlotAvailability: dayOfWeek=%d group=%s, %d slots", req.DayOfWeek, group, len(slots))

	return &Response{
		DayOfWeek: req.DayOfWeek,
		Group:     string(group),
		Slots:     slots,
	}, nil
}
