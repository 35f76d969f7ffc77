package get_business_page

import (
	"context"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/service/businesses/models"
)

type BusinessService interface {
	Page(ctx context.Context, session *domain.Session, businessID string) (*models.PageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
