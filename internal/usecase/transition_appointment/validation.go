package transition_appointment

import (
	"fmt"
	"strings"

	"github.com/sudeal/Nokta-sub000/internal/scheduling"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session == nil || req.Session.UserID == "" || !req.Session.Role.IsValid() {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BusinessID) == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AppointmentID) == "" {
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	if _, ok := scheduling.ParseAction(string(req.Action)); !ok {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	// Бизнес работает только со своими записями
	if req.Session.IsBusiness() && !req.Session.OwnsBusiness(req.BusinessID) {
		return fmt.Errorf("%w: business %s cannot manage %s", ErrForbidden, req.Session.BusinessID, req.BusinessID)
	}

	return nil
}
