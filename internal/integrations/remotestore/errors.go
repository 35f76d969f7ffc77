package remotestore

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенная сущность отсутствует (404)
	ErrNotFound = errors.New("remotestore client: not found")

	// ErrUnavailable возвращается при сетевых ошибках и таймаутах
	ErrUnavailable = errors.New("remotestore client: store unavailable")

	// ErrUnexpectedStatus возвращается при любом другом не-2xx ответе
	ErrUnexpectedStatus = errors.New("remotestore client: unexpected status")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("remotestore client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("remotestore client: internal error")
)
