package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/courses-api/internal/models"
)

// ReportRepository runs read-only aggregations.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// StudentCourseStats returns assigned and completed course counts for every student,
// including students without participations, in a single query.
func (r *ReportRepository) StudentCourseStats(ctx context.Context) ([]models.StudentCourseStats, error) {
	const query = `SELECT s.id AS student_id, s.first_name || ' ' || s.last_name AS full_name,
        COUNT(cp.id) AS num_assigned,
        COUNT(cp.id) FILTER (WHERE cp.completed) AS num_completed
        FROM students s
        LEFT JOIN course_participants cp ON cp.student_id = s.id
        GROUP BY s.id
        ORDER BY s.id`
	stats := []models.StudentCourseStats{}
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("student course stats: %w", err)
	}
	return stats, nil
}
