package appointments

import (
	"context"
	"fmt"
	"io"

	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/pkg/export"
	"github.com/sudeal/Nokta-sub000/pkg/ptr"
)

const exportSheet = "Appointments"

var exportColumns = []string{"ID", "Customer", "Date", "Time", "Status", "Note", "Created"}

// Export пишет в out xlsx-файл со всеми обработанными записями (вкладка all).
// Требует включенной возможности statistics.
func (s *Service) Export(ctx context.Context, session *domain.Session, businessID string, out io.Writer) error {
	s.logger.Info("Export: business=%s, user=%s", businessID, sessionUser(session))

	snap, err := s.load(ctx, session, businessID, nil)
	if err != nil {
		return err
	}
	if !snap.business.Features.Has(domain.FeatureStatistics) {
		s.logger.Warn("Export: feature disabled for business=%s", businessID)
		return ErrFeatureDisabled
	}

	wb := export.NewWorkbook()
	defer wb.Close()

	if err := wb.AddSheet(exportSheet); err != nil {
		return fmt.Errorf("%w: Export - add sheet: %v", ErrInternal, err)
	}
	if err := wb.WriteHeader(exportColumns); err != nil {
		return fmt.Errorf("%w: Export - write header: %v", ErrInternal, err)
	}

	for _, a := range snap.buckets.All {
		row := []interface{}{
			a.ID,
			a.CustomerID,
			a.ScheduledAt.Format(domain.DateFormat),
			a.ScheduledAt.Format(domain.TimeFormat),
			string(a.Status),
			ptr.Value(a.Note),
			a.CreatedAt.Format(domain.DateFormat),
		}
		if err := wb.WriteRow(row); err != nil {
			return fmt.Errorf("%w: Export - write row: %v", ErrInternal, err)
		}
	}

	if _, err := wb.WriteTo(out); err != nil {
		return fmt.Errorf("%w: Export - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: business=%s exported %d appointments", businessID, len(snap.buckets.All))
	return nil
}
