package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/courses-api/internal/models"
)

// CourseParticipantRepository handles persistence of course participations.
type CourseParticipantRepository struct {
	db *sqlx.DB
}

// NewCourseParticipantRepository constructs the repository.
func NewCourseParticipantRepository(db *sqlx.DB) *CourseParticipantRepository {
	return &CourseParticipantRepository{db: db}
}

// Exists reports whether the student participates in the course.
func (r *CourseParticipantRepository) Exists(ctx context.Context, courseID, studentID int64) (bool, error) {
	const query = `SELECT 1 FROM course_participants WHERE course_id = $1 AND student_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, courseID, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check participant: %w", err)
	}
	return true, nil
}

// Create inserts a participation. A concurrent duplicate surfaces as ErrDuplicate,
// a vanished course or student as ErrForeignKey.
func (r *CourseParticipantRepository) Create(ctx context.Context, participant *models.CourseParticipant) error {
	const query = `INSERT INTO course_participants (course_id, student_id, completed) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.GetContext(ctx, &participant.ID, query, participant.CourseID, participant.StudentID, participant.Completed); err != nil {
		return fmt.Errorf("create participant: %w", translateError(err))
	}
	return nil
}

// Delete removes the participation and reports whether a row existed.
func (r *CourseParticipantRepository) Delete(ctx context.Context, courseID, studentID int64) (bool, error) {
	const query = `DELETE FROM course_participants WHERE course_id = $1 AND student_id = $2`
	res, err := r.db.ExecContext(ctx, query, courseID, studentID)
	if err != nil {
		return false, fmt.Errorf("delete participant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete participant: %w", err)
	}
	return affected > 0, nil
}

// ListFirstByCourses returns, in one query, up to limit participants per course
// ordered by participation id, for every course in courseIDs.
func (r *CourseParticipantRepository) ListFirstByCourses(ctx context.Context, courseIDs []int64, limit int) ([]models.ParticipantDetail, error) {
	if len(courseIDs) == 0 || limit <= 0 {
		return []models.ParticipantDetail{}, nil
	}
	query, args, err := sqlx.In(`SELECT ranked.course_id, ranked.student_id, ranked.completed, ranked.first_name, ranked.last_name, ranked.email
        FROM (
            SELECT cp.id, cp.course_id, cp.student_id, cp.completed, s.first_name, s.last_name, s.email,
                ROW_NUMBER() OVER (PARTITION BY cp.course_id ORDER BY cp.id) AS position
            FROM course_participants cp
            JOIN students s ON s.id = cp.student_id
            WHERE cp.course_id IN (?)
        ) ranked
        WHERE ranked.position <= ?
        ORDER BY ranked.course_id, ranked.position`, courseIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("build participants query: %w", err)
	}
	participants := []models.ParticipantDetail{}
	if err := r.db.SelectContext(ctx, &participants, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

// SetCompleted flips the completion flag of a participation.
func (r *CourseParticipantRepository) SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error {
	const query = `UPDATE course_participants SET completed = $3 WHERE course_id = $1 AND student_id = $2`
	res, err := r.db.ExecContext(ctx, query, courseID, studentID, completed)
	if err != nil {
		return fmt.Errorf("set participant completed: %w", err)
	}
	return expectAffected(res, "set participant completed")
}
