package dto

import (
	"strconv"

	"github.com/noah-isme/courses-api/internal/models"
	"github.com/noah-isme/courses-api/pkg/export"
)

// ReportFormat selects the encoding of the students report.
type ReportFormat string

// Supported report encodings.
const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatPDF  ReportFormat = "pdf"
)

// ReportColumns is the column order shared by every report encoding.
var ReportColumns = []string{"full_name", "num_assigned", "num_completed"}

// StudentReportItem is one row of the students report.
type StudentReportItem struct {
	FullName     string `json:"full_name"`
	NumAssigned  int    `json:"num_assigned"`
	NumCompleted int    `json:"num_completed"`
}

// NewStudentReportItems maps aggregated stats to report rows.
func NewStudentReportItems(stats []models.StudentCourseStats) []StudentReportItem {
	items := make([]StudentReportItem, 0, len(stats))
	for _, s := range stats {
		items = append(items, StudentReportItem{FullName: s.FullName, NumAssigned: s.NumAssigned, NumCompleted: s.NumCompleted})
	}
	return items
}

// NewReportDataset converts report rows into a tabular export dataset.
func NewReportDataset(items []StudentReportItem) export.Dataset {
	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, map[string]string{
			"full_name":     item.FullName,
			"num_assigned":  strconv.Itoa(item.NumAssigned),
			"num_completed": strconv.Itoa(item.NumCompleted),
		})
	}
	return export.Dataset{Title: "Students report", Headers: ReportColumns, Rows: rows}
}
