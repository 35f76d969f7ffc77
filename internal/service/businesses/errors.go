package businesses

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("businesses: business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("businesses: invalid input data")

	// ErrRemoteStore возвращается при ошибке внешнего хранилища
	ErrRemoteStore = errors.New("businesses: remote store error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("businesses: internal error")
)
