package events

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/pkg/psqlbuilder"
)

const tableName = "appointment_events"

var columns = []string{
	"id",
	"appointment_id",
	"business_id",
	"actor_id",
	"actor_role",
	"action",
	"from_status",
	"to_status",
	"occurred_at",
}

// Repository журнал действий над записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет событие в журнал и заполняет его ID
func (r *Repository) Append(ctx context.Context, event *domain.AppointmentEvent) error {
	if event == nil || event.AppointmentID == "" || event.BusinessID == "" || event.Action == "" {
		return ErrInvalidEvent
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"appointment_id",
			"business_id",
			"actor_id",
			"actor_role",
			"action",
			"from_status",
			"to_status",
			"occurred_at",
		).
		Values(
			event.AppointmentID,
			event.BusinessID,
			event.ActorID,
			string(event.ActorRole),
			event.Action,
			statusValue(event.FromStatus),
			statusValue(event.ToStatus),
			event.OccurredAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListByAppointment возвращает события записи в порядке возникновения
func (r *Repository) ListByAppointment(ctx context.Context, businessID, appointmentID string) ([]*domain.AppointmentEvent, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"business_id":    businessID,
			"appointment_id": appointmentID,
		}).
		OrderBy("occurred_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentEvent, 0)
	for rows.Next() {
		var (
			event      domain.AppointmentEvent
			role       string
			fromStatus sql.NullString
			toStatus   sql.NullString
		)
		if err := rows.Scan(
			&event.ID,
			&event.AppointmentID,
			&event.BusinessID,
			&event.ActorID,
			&role,
			&event.Action,
			&fromStatus,
			&toStatus,
			&event.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan event: %v", ErrScanRow, err)
		}

		event.ActorRole = domain.ActorRole(role)
		event.FromStatus = statusPtr(fromStatus)
		event.ToStatus = statusPtr(toStatus)
		result = append(result, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - iterate rows: %v", ErrScanRow, err)
	}
	return result, nil
}

func statusValue(s *domain.AppointmentStatus) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*s), Valid: true}
}

func statusPtr(v sql.NullString) *domain.AppointmentStatus {
	if !v.Valid {
		return nil
	}
	s := domain.AppointmentStatus(v.String)
	return &s
}
