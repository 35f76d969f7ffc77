package remotestore

import (
	"fmt"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// Appointment модель записи во внешнем хранилище
type Appointment struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	BusinessID  string    `json:"businessId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Note        *string   `json:"note,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Business модель бизнеса во внешнем хранилище
type Business struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	OpeningHour float64  `json:"openingHour"`
	ClosingHour float64  `json:"closingHour"`
	Timezone    string   `json:"timezone,omitempty"` // IANA, пусто = UTC
	Features    []string `json:"features"`
}

// CreateAppointmentRequest тело запроса на создание записи
type CreateAppointmentRequest struct {
	CustomerID  string    `json:"customerId"`
	BusinessID  string    `json:"businessId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Note        *string   `json:"note,omitempty"`
}

// UpdateStatusRequest тело запроса на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки внешнего хранилища
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует запись в доменную модель
func (a *Appointment) ToDomain() (*domain.Appointment, error) {
	status, ok := domain.ParseAppointmentStatus(a.Status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q for appointment %s", a.Status, a.ID)
	}
	if a.ID == "" {
		return nil, fmt.Errorf("appointment without id")
	}

	return &domain.Appointment{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		BusinessID:  a.BusinessID,
		ScheduledAt: a.ScheduledAt,
		Note:        a.Note,
		Status:      status,
		CreatedAt:   a.CreatedAt,
	}, nil
}

// ToDomain конвертирует бизнес в доменную модель
func (b *Business) ToDomain() (*domain.Business, error) {
	loc := time.UTC
	if b.Timezone != "" {
		l, err := time.LoadLocation(b.Timezone)
		if err != nil {
			return nil, fmt.Errorf("business %s: invalid timezone %q: %v", b.ID, b.Timezone, err)
		}
		loc = l
	}

	features := make([]domain.Feature, 0, len(b.Features))
	for _, f := range b.Features {
		features = append(features, domain.Feature(f))
	}

	return &domain.Business{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		Phone:       b.Phone,
		Hours: domain.BusinessHours{
			OpeningHour: b.OpeningHour,
			ClosingHour: b.ClosingHour,
			Location:    loc,
		},
		Features: domain.NewFeatureSet(features...),
	}, nil
}
