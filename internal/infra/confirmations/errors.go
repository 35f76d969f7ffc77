package confirmations

import "errors"

var (
	// ErrNotFound возвращается, когда токен неизвестен, уже использован или истек
	ErrNotFound = errors.New("confirmations: token not found or expired")

	// ErrMismatch возвращается, когда токен выдан для другого действия или другой записи
	ErrMismatch = errors.New("confirmations: token does not match the request")

	// ErrStore возвращается при ошибке хранилища токенов
	ErrStore = errors.New("confirmations: store error")
)
