package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/courses-api/internal/dto"
	"github.com/noah-isme/courses-api/internal/models"
	appErrors "github.com/noah-isme/courses-api/pkg/errors"
	"github.com/noah-isme/courses-api/pkg/export"
)

type reportRepository interface {
	StudentCourseStats(ctx context.Context) ([]models.StudentCourseStats, error)
}

// ReportFile is a rendered, non-JSON report.
type ReportFile struct {
	ContentType string
	Filename    string
	Body        []byte
}

// ReportService builds the per-student course report.
type ReportService struct {
	repo      reportRepository
	exporters map[dto.ReportFormat]export.Exporter
	logger    *zap.Logger
}

// NewReportService constructs the report service with CSV and PDF exporters.
func NewReportService(repo reportRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		repo: repo,
		exporters: map[dto.ReportFormat]export.Exporter{
			dto.ReportFormatCSV: export.NewCSVExporter(),
			dto.ReportFormatPDF: export.NewPDFExporter(),
		},
		logger: logger,
	}
}

// Students returns assigned and completed course counts for every student.
func (s *ReportService) Students(ctx context.Context) ([]dto.StudentReportItem, error) {
	stats, err := s.repo.StudentCourseStats(ctx)
	if err != nil {
		s.logger.Error("report query failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build report")
	}
	return dto.NewStudentReportItems(stats), nil
}

// Supports reports whether format can be produced.
func (s *ReportService) Supports(format dto.ReportFormat) bool {
	if format == dto.ReportFormatJSON {
		return true
	}
	_, ok := s.exporters[format]
	return ok
}

// Export renders the report with a tabular exporter (csv, pdf).
func (s *ReportService) Export(ctx context.Context, format dto.ReportFormat) (*ReportFile, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Report format %q is not supported", format))
	}
	items, err := s.Students(ctx)
	if err != nil {
		return nil, err
	}
	body, err := exporter.Render(dto.NewReportDataset(items))
	if err != nil {
		s.logger.Error("report render failed", zap.Error(err), zap.String("format", string(format)))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}
	return &ReportFile{
		ContentType: exporter.ContentType(),
		Filename:    fmt.Sprintf("students_report.%s", format),
		Body:        body,
	}, nil
}
