package create_appointment

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь-владелец не найден
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrSundayClosed возвращается при попытке записаться на воскресенье
	// при включенной политике "воскресенье - выходной"
	ErrSundayClosed = errors.New("create_appointment: sunday is closed")

	// ErrOutsideBusinessHours возвращается, когда время вне рабочего окна
	ErrOutsideBusinessHours = errors.New("create_appointment: time is outside business hours")

	// ErrSlotTaken возвращается, когда слот уже занят активной записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
