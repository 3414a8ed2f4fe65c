package get_slot_availability

import (
	getSlotAvailability "github.com/mcozcn/salondesk/internal/usecase/get_slot_availability"
)

// SlotResponse занятость одного слота
type SlotResponse struct {
	TimeSlot       string `json:"timeSlot"`
	ActiveCount    int    `json:"activeCount"`
	AvailableSeats int    `json:"availableSeats"`
	Capacity       int    `json:"capacity"`
}

// AvailabilityResponse сетка занятости на день недели
type AvailabilityResponse struct {
	DayOfWeek int            `json:"dayOfWeek"`
	Group     string         `json:"group,omitempty"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			TimeSlot:       slot.TimeSlot.String(),
			ActiveCount:    slot.ActiveCount,
			AvailableSeats: slot.AvailableSeats,
			Capacity:       slot.Capacity,
		})
	}
	return &AvailabilityResponse{
		DayOfWeek: resp.DayOfWeek,
		Group:     resp.Group,
		Slots:     slots,
	}
}
