package get_slot_availability

import "github.com/mcozcn/salondesk/pkg/types"

// Request модель запроса сетки занятости слотов
type Request struct {
	DayOfWeek int // ISO номер дня недели (1=Пн ... 6=Сб; 0 и 7 - воскресенье)
}

// Slot занятость одного временного слота
type Slot struct {
	TimeSlot       types.TimeString // Слот из каталога
	ActiveCount    int              // Занятые места
	AvailableSeats int              // Свободные места
	Capacity       int              // Всего мест
}

// Response сетка занятости всех слотов каталога на один день недели
type Response struct {
	DayOfWeek int    // Запрошенный день недели
	Group     string // Группа этого дня ("A"/"B", пустая для воскресенья)
	Slots     []Slot // По одному элементу на слот каталога
}
