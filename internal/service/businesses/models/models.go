package models

import (
	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// HoursResponse рабочие часы в формате HH:MM
type HoursResponse struct {
	Opening  string `json:"opening"`
	Closing  string `json:"closing"`
	Timezone string `json:"timezone"`
}

// SectionResponse блок страницы бизнеса
type SectionResponse struct {
	Key       string  `json:"key"`
	OwnerOnly bool    `json:"ownerOnly,omitempty"`
	Address   *string `json:"address,omitempty"` // для directions
	Phone     *string `json:"phone,omitempty"`   // для messaging
}

// PageResponse страница бизнеса
type PageResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Hours       HoursResponse      `json:"hours"`
	Sections    []*SectionResponse `json:"sections"`
	Bookable    bool               `json:"bookable"` // показывать ли форму записи
}

// AvailabilityResponse результат проверки времени записи
type AvailabilityResponse struct {
	Bookable bool          `json:"bookable"`
	Reason   *string       `json:"reason,omitempty"`
	Hours    HoursResponse `json:"hours"`
}

// FromDomainHours конвертирует рабочие часы
func FromDomainHours(h domain.BusinessHours) HoursResponse {
	tz := "UTC"
	if h.Location != nil {
		tz = h.Location.String()
	}
	return HoursResponse{
		Opening:  domain.FormatHour(h.OpeningHour),
		Closing:  domain.FormatHour(h.ClosingHour),
		Timezone: tz,
	}
}
