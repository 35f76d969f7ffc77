package models

import (
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/scheduling"
)

// AppointmentResponse запись в представлении дашборда
type AppointmentResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	BusinessID     string    `json:"businessId"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Note           *string   `json:"note,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	Expired        bool      `json:"expired"`
	AllowedActions []string  `json:"allowedActions"`
}

// DashboardResponse записи бизнеса, разложенные по вкладкам
type DashboardResponse struct {
	BusinessID string                 `json:"businessId"`
	Date       *string                `json:"date,omitempty"`
	Today      []*AppointmentResponse `json:"today"`
	Pending    []*AppointmentResponse `json:"pending"`
	Expired    []*AppointmentResponse `json:"expired"`
	All        []*AppointmentResponse `json:"all"`
}

// StatisticsResponse сводка по записям бизнеса
type StatisticsResponse struct {
	BusinessID string         `json:"businessId"`
	Total      int            `json:"total"`
	Today      int            `json:"today"`
	Pending    int            `json:"pending"`
	Expired    int            `json:"expired"`
	ByStatus   map[string]int `json:"byStatus"`
}

// EventResponse событие журнала аудита
type EventResponse struct {
	ID         int64     `json:"id"`
	ActorID    string    `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	Action     string    `json:"action"`
	FromStatus *string   `json:"fromStatus,omitempty"`
	ToStatus   *string   `json:"toStatus,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventListResponse история действий над записью
type EventListResponse struct {
	AppointmentID string           `json:"appointmentId"`
	Events        []*EventResponse `json:"events"`
}

// FromDomainAppointment конвертирует доменную запись в ответ
func FromDomainAppointment(a *domain.Appointment, expired bool, actions []scheduling.Action) *AppointmentResponse {
	allowed := make([]string, 0, len(actions))
	for _, action := range actions {
		allowed = append(allowed, string(action))
	}

	return &AppointmentResponse{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		BusinessID:     a.BusinessID,
		ScheduledAt:    a.ScheduledAt,
		Note:           a.Note,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		Expired:        expired,
		AllowedActions: allowed,
	}
}

// FromDomainEvent конвертирует событие журнала в ответ
func FromDomainEvent(e *domain.AppointmentEvent) *EventResponse {
	return &EventResponse{
		ID:         e.ID,
		ActorID:    e.ActorID,
		ActorRole:  string(e.ActorRole),
		Action:     e.Action,
		FromStatus: statusString(e.FromStatus),
		ToStatus:   statusString(e.ToStatus),
		OccurredAt: e.OccurredAt,
	}
}

// FromDomainEventList конвертирует историю записи
func FromDomainEventList(appointmentID string, events []*domain.AppointmentEvent) *EventListResponse {
	result := &EventListResponse{
		AppointmentID: appointmentID,
		Events:        make([]*EventResponse, 0, len(events)),
	}
	for _, e := range events {
		result.Events = append(result.Events, FromDomainEvent(e))
	}
	return result
}

func statusString(s *domain.AppointmentStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
