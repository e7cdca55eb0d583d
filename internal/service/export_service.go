package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/pkg/clock"
	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
	"github.com/noah-isme/hr-records-api/pkg/export"
)

type rosterSource interface {
	ListAll(ctx context.Context) ([]models.Employee, error)
}

// ExportResult is a rendered document ready to be sent as an attachment.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the employee roster.
type ExportService struct {
	employees rosterSource
	clock     clock.Clock
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(employees rosterSource, clk clock.Clock, logger *zap.Logger) *ExportService {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{employees: employees, clock: clk, logger: logger}
}

var rosterColumns = []string{"Id", "First Name", "Last Name", "Email", "Phone Number", "City", "State", "Created On", "Last Modified On"}

// EmployeeRoster renders every employee in the requested format.
func (s *ExportService) EmployeeRoster(ctx context.Context, format string) (*ExportResult, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, err.Error())
	}
	employees, err := s.employees.ListAll(ctx)
	if err != nil {
		s.logger.Error("load roster failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employees")
	}

	now := s.clock.Now()
	table := export.Table{
		Title:   fmt.Sprintf("Employee roster %s", now.Format("2006-01-02")),
		Columns: rosterColumns,
		Rows: lo.Map(employees, func(e models.Employee, _ int) []string {
			return []string{
				e.ID,
				e.FirstName,
				e.LastName,
				lo.FromPtr(e.Email),
				lo.FromPtr(e.PhoneNumber),
				lo.FromPtr(e.City),
				lo.FromPtr(e.State),
				formatStamp(e.CreatedOn),
				formatStamp(e.LastModifiedOn),
			}
		}),
	}

	var buf bytes.Buffer
	switch f {
	case export.FormatPDF:
		err = export.WritePDF(&buf, table)
	default:
		err = export.WriteCSV(&buf, table)
	}
	if err != nil {
		s.logger.Error("render roster failed", zap.String("format", string(f)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("roster exported", zap.String("format", string(f)), zap.Int("employees", len(employees)))
	return &ExportResult{
		Filename:    fmt.Sprintf("employees-%s.%s", now.Format("20060102"), f),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
