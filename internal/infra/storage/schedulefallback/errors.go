package schedulefallback

import "errors"

var (
	// ErrWriteFailed возвращается, когда запись в локальное хранилище не удалась.
	// Это последняя линия обороны: деградированная запись поглощает ошибки
	// удаленной БД, но собственный сбой скрывать уже некуда.
	ErrWriteFailed = errors.New("schedulefallback.repository: failed to write local collection")

	// ErrScheduleNotFound возвращается, когда локальная запись не найдена
	ErrScheduleNotFound = errors.New("schedulefallback.repository: schedule not found")
)
