package book_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session == nil || req.Session.UserID == "" {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	if !req.Session.IsCustomer() {
		return ErrForbidden
	}

	if strings.TrimSpace(req.BusinessID) == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if req.Note != nil && utf8.RuneCountInString(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note is longer than %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// normalizeNote убирает пробелы; пустой комментарий не отправляется
func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
