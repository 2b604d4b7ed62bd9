package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/courses-api/internal/dto"
	"github.com/noah-isme/courses-api/internal/service"
	appErrors "github.com/noah-isme/courses-api/pkg/errors"
	"github.com/noah-isme/courses-api/pkg/export"
	"github.com/noah-isme/courses-api/pkg/response"
)

type reportService interface {
	Students(ctx context.Context) ([]dto.StudentReportItem, error)
	Supports(format dto.ReportFormat) bool
	Export(ctx context.Context, format dto.ReportFormat) (*service.ReportFile, error)
}

// ReportHandler serves the per-student course report.
type ReportHandler struct {
	reports reportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports reportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Students godoc
// @Summary Students course report
// @Description Assigned and completed course counts for every student. The format is
// @Description taken from the format query parameter, then the Accept header, and defaults to JSON.
// @Tags Reports
// @Produce json,text/csv,application/pdf
// @Param format query string false "json, csv or pdf"
// @Success 200 {array} dto.StudentReportItem
// @Failure 404 {array} errors.Error
// @Router /courses/report [get]
func (h *ReportHandler) Students(c *gin.Context) {
	h.render(c, negotiateFormat(c))
}

// StudentsAs serves the report in a fixed format, for the suffixed routes
// such as /courses/report.csv.
func (h *ReportHandler) StudentsAs(format dto.ReportFormat) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, format)
	}
}

func (h *ReportHandler) render(c *gin.Context, format dto.ReportFormat) {
	if !h.reports.Supports(format) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Report format %q is not supported", format)))
		return
	}
	if format == dto.ReportFormatJSON {
		items, err := h.reports.Students(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, items)
		return
	}
	file, err := h.reports.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", file.Filename))
	response.Render(c, http.StatusOK, file.ContentType, file.Body)
}

func negotiateFormat(c *gin.Context) dto.ReportFormat {
	if format := strings.ToLower(strings.TrimSpace(c.Query("format"))); format != "" {
		return dto.ReportFormat(format)
	}
	if c.GetHeader("Accept") == "" {
		return dto.ReportFormatJSON
	}
	switch c.NegotiateFormat(gin.MIMEJSON, "text/csv", export.PDFContentType) {
	case "text/csv":
		return dto.ReportFormatCSV
	case export.PDFContentType:
		return dto.ReportFormatPDF
	default:
		return dto.ReportFormatJSON
	}
}
