package transition_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_appointment: invalid input data")

	// ErrForbidden возвращается, когда пользователь не владеет бизнесом или записью
	ErrForbidden = errors.New("transition_appointment: access denied")

	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("transition_appointment: business not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена у бизнеса
	ErrAppointmentNotFound = errors.New("transition_appointment: appointment not found")

	// ErrIllegalTransition возвращается, когда действие недопустимо для текущего статуса
	ErrIllegalTransition = errors.New("transition_appointment: illegal transition")

	// ErrNotCompletableYet возвращается при попытке завершить запись будущего дня
	ErrNotCompletableYet = errors.New("transition_appointment: appointment cannot be completed yet")

	// ErrInvalidConfirmation возвращается, когда токен подтверждения неизвестен, истек или выдан для другого действия
	ErrInvalidConfirmation = errors.New("transition_appointment: invalid confirmation token")

	// ErrRemoteStore возвращается при ошибке внешнего хранилища
	ErrRemoteStore = errors.New("transition_appointment: remote store error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_appointment: internal error")
)
