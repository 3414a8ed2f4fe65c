package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда запись расписания не найдена
	ErrScheduleNotFound = errors.New("schedules: schedule not found")

	// ErrLocalRecordImmutable возвращается при попытке обновить запись
	// локального происхождения: удаленная БД о ней не знает, а локального
	// пути обновления у менеджера нет
	ErrLocalRecordImmutable = errors.New("schedules: local-origin schedule cannot be updated")

	// ErrUnknownTimeSlot возвращается для слота вне фиксированного каталога
	ErrUnknownTimeSlot = errors.New("schedules: time slot is not in the catalog")

	// ErrInvalidWeekday возвращается для номера дня недели вне диапазона 0..7
	ErrInvalidWeekday = errors.New("schedules: invalid weekday number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules: internal error")
)
