package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrForbidden возвращается, когда записаться пытается не клиент
	ErrForbidden = errors.New("book_appointment: only customers can book")

	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("book_appointment: business not found")

	// ErrPastDate возвращается, когда время записи уже прошло
	ErrPastDate = errors.New("book_appointment: appointment time is in the past")

	// ErrOutsideBusinessHours возвращается, когда время записи вне рабочих часов
	ErrOutsideBusinessHours = errors.New("book_appointment: appointment time is outside business hours")

	// ErrRemoteStore возвращается при ошибке внешнего хранилища
	ErrRemoteStore = errors.New("book_appointment: remote store error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
