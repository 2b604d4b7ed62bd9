package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/courses-api/internal/models"
)

const courseSummarySelect = `SELECT c.id, c.name, c.description, c.start_date, c.end_date, COUNT(cp.id) AS students_count
        FROM courses c
        LEFT JOIN course_participants cp ON cp.course_id = c.id`

// CourseRepository handles persistence of courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListSummaries returns every course with its participant count in a single query.
func (r *CourseRepository) ListSummaries(ctx context.Context) ([]models.CourseSummary, error) {
	query := courseSummarySelect + `
        GROUP BY c.id
        ORDER BY c.id`
	courses := []models.CourseSummary{}
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindSummaryByID returns a course with its participant count.
func (r *CourseRepository) FindSummaryByID(ctx context.Context, id int64) (*models.CourseSummary, error) {
	query := courseSummarySelect + `
        WHERE c.id = $1
        GROUP BY c.id`
	var course models.CourseSummary
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByID returns a course by its ID.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, name, description, start_date, end_date FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create persists a new course and fills its ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (name, description, start_date, end_date) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &course.ID, query, course.Name, course.Description, course.StartDate, course.EndDate); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update modifies an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET name = :name, description = :description, start_date = :start_date, end_date = :end_date WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return expectAffected(res, "update course")
}

// Delete removes a course and, by cascade, its participants.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return expectAffected(res, "delete course")
}
