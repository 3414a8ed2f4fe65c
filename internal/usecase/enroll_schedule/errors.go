package enroll_schedule

import "errors"

var (
	// ErrSlotCapacityExceeded возвращается, когда в паре (группа, слот)
	// не осталось свободных мест. Единственная ошибка бизнес-правила:
	// она всегда возникает до любой записи и должна быть показана оператору.
	ErrSlotCapacityExceeded = errors.New("enroll_schedule: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enroll_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase.
	// Сбои удаленной БД сюда не попадают - их поглощает локальный резерв;
	// остается только отказ самого локального хранилища.
	ErrInternal = errors.New("enroll_schedule: internal error")
)
