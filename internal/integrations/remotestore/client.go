package remotestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/pkg/metrics"
)

const apiKeyHeader = "X-API-Key"

// Client клиент для работы с внешним REST API записей и бизнесов.
// Каждый вызов выполняется ровно один раз: повторов и кэширования нет.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        Logger
}

// Option настраивает клиент
type Option func(*Client)

// WithAPIKey передает ключ в заголовке X-API-Key
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithMetrics включает учет вызовов в Prometheus
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithHTTPClient подменяет HTTP клиент (используется в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetBusiness получает профиль бизнеса вместе с рабочими часами и набором возможностей
func (c *Client) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	var business Business
	endpoint := fmt.Sprintf("%s/businesses/%s", c.baseURL, url.PathEscape(businessID))

	if err := c.do(ctx, "get_business", http.MethodGet, endpoint, nil, &business); err != nil {
		return nil, err
	}

	result, err := business.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return result, nil
}

// FetchAppointments получает все записи бизнеса
func (c *Client) FetchAppointments(ctx context.Context, businessID string) ([]*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/businesses/%s/appointments", c.baseURL, url.PathEscape(businessID))
	return c.fetchAppointments(ctx, "fetch_appointments", endpoint)
}

// FetchAppointmentsOn получает записи бизнеса на один календарный день
func (c *Client) FetchAppointmentsOn(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/businesses/%s/appointments?date=%s",
		c.baseURL, url.PathEscape(businessID), url.QueryEscape(date.Format(domain.DateFormat)))
	return c.fetchAppointments(ctx, "fetch_appointments_on", endpoint)
}

// CreateAppointment создает запись; хранилище выставляет статус pending
func (c *Client) CreateAppointment(
	ctx context.Context,
	customerID string,
	businessID string,
	scheduledAt time.Time,
	note *string,
) (*domain.Appointment, error) {
	body := CreateAppointmentRequest{
		CustomerID:  customerID,
		BusinessID:  businessID,
		ScheduledAt: scheduledAt,
		Note:        note,
	}

	var created Appointment
	if err := c.do(ctx, "create_appointment", http.MethodPost, c.baseURL+"/appointments", body, &created); err != nil {
		return nil, err
	}
	return c.toDomain(&created)
}

// UpdateAppointmentStatus меняет статус записи
func (c *Client) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/%s/status", c.baseURL, url.PathEscape(appointmentID))

	var updated Appointment
	if err := c.do(ctx, "update_appointment_status", http.MethodPatch, endpoint, UpdateStatusRequest{Status: string(status)}, &updated); err != nil {
		return nil, err
	}
	return c.toDomain(&updated)
}

// AcceptAppointment вызывает отдельный эндпоинт подтверждения записи бизнесом
func (c *Client) AcceptAppointment(ctx context.Context, businessID, appointmentID string) (*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/businesses/%s/appointments/%s/accept",
		c.baseURL, url.PathEscape(businessID), url.PathEscape(appointmentID))

	var accepted Appointment
	if err := c.do(ctx, "accept_appointment", http.MethodPost, endpoint, nil, &accepted); err != nil {
		return nil, err
	}
	return c.toDomain(&accepted)
}

// DeleteAppointment удаляет запись без возможности восстановления
func (c *Client) DeleteAppointment(ctx context.Context, appointmentID string) error {
	endpoint := fmt.Sprintf("%s/appointments/%s", c.baseURL, url.PathEscape(appointmentID))
	return c.do(ctx, "delete_appointment", http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) fetchAppointments(ctx context.Context, operation, endpoint string) ([]*domain.Appointment, error) {
	var raw []Appointment
	if err := c.do(ctx, operation, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0, len(raw))
	for i := range raw {
		a, err := c.toDomain(&raw[i])
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func (c *Client) toDomain(a *Appointment) (*domain.Appointment, error) {
	result, err := a.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return result, nil
}

// do выполняет один запрос и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, endpoint string, body, out interface{}) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveRemoteCall(operation, err, time.Since(started))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("RemoteStore %s: request failed: %v", operation, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, operation, err)
	}
	defer resp.Body.Close()

	c.log.Debug("RemoteStore %s: %s %s -> %d in %s", operation, method, endpoint, resp.StatusCode, time.Since(started))

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	default:
		msg := readErrorMessage(resp.Body)
		c.log.Warn("RemoteStore %s: unexpected status %d: %s", operation, resp.StatusCode, msg)
		return fmt.Errorf("%w: %s: status %d: %s", ErrUnexpectedStatus, operation, resp.StatusCode, msg)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s: empty body", ErrInvalidResponse, operation)
		}
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, operation, err)
	}

	return nil
}

func readErrorMessage(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(data))
}
