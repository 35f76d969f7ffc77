package appointments

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("appointments: business not found")

	// ErrAccessDenied возвращается, когда пользователь не управляет бизнесом
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrFeatureDisabled возвращается, когда у бизнеса не включена статистика
	ErrFeatureDisabled = errors.New("appointments: feature is not enabled for this business")

	// ErrJournalDisabled возвращается, когда журнал аудита не настроен
	ErrJournalDisabled = errors.New("appointments: audit journal is disabled")

	// ErrRemoteStore возвращается при ошибке внешнего хранилища
	ErrRemoteStore = errors.New("appointments: remote store error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
