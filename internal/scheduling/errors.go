package scheduling

import "errors"

var (
	// ErrPastDate возвращается, когда время записи раньше текущего
	ErrPastDate = errors.New("scheduling: appointment time is in the past")

	// ErrOutsideBusinessHours возвращается, когда время записи вне рабочих часов бизнеса
	ErrOutsideBusinessHours = errors.New("scheduling: appointment time is outside business hours")

	// ErrInvalidHours возвращается при некорректном окне рабочих часов
	ErrInvalidHours = errors.New("scheduling: invalid business hours")

	// ErrInvalidCandidate возвращается, когда время записи не указано
	ErrInvalidCandidate = errors.New("scheduling: candidate time is required")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("scheduling: illegal status transition")

	// ErrActorNotAllowed возвращается, когда переход допустим, но не для этого участника
	ErrActorNotAllowed = errors.New("scheduling: actor is not allowed to perform this action")

	// ErrNotCompletableYet возвращается при попытке завершить запись будущего дня
	ErrNotCompletableYet = errors.New("scheduling: appointment cannot be completed before its day")
)
