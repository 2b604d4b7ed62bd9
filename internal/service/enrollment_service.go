package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/noah-isme/courses-api/internal/models"
	"github.com/noah-isme/courses-api/internal/repository"
	appErrors "github.com/noah-isme/courses-api/pkg/errors"
)

// Enrollment failures surfaced to clients.
var (
	ErrCourseNotFound  = appErrors.New(appErrors.CodeNotFound, http.StatusNotFound, "Course not found")
	ErrStudentNotFound = appErrors.New(appErrors.CodeNotFound, http.StatusNotFound, "Student not found")
	ErrAlreadyAssigned = appErrors.New(appErrors.CodeInvalid, http.StatusBadRequest, "Already assigned to course")
	ErrNotAssigned     = appErrors.New(appErrors.CodeInvalid, http.StatusBadRequest, "Student not assigned to course")
)

// Enrollment operation labels.
const (
	OperationAssign   = "assign"
	OperationUnassign = "unassign"
	OperationComplete = "complete"
)

type courseReader interface {
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

type studentReader interface {
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

type participantStore interface {
	Exists(ctx context.Context, courseID, studentID int64) (bool, error)
	Create(ctx context.Context, participant *models.CourseParticipant) error
	Delete(ctx context.Context, courseID, studentID int64) (bool, error)
	SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error
}

type enrollmentRecorder interface {
	ObserveEnrollment(operation, outcome string)
}

// EnrollmentService assigns students to courses and removes them.
type EnrollmentService struct {
	courses      courseReader
	students     studentReader
	participants participantStore
	recorder     enrollmentRecorder
	logger       *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService. recorder may be nil.
func NewEnrollmentService(courses courseReader, students studentReader, participants participantStore, recorder enrollmentRecorder, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{courses: courses, students: students, participants: participants, recorder: recorder, logger: logger}
}

// Assign creates the participation of studentID in courseID.
func (s *EnrollmentService) Assign(ctx context.Context, courseID, studentID int64) (err error) {
	defer s.observe(OperationAssign, &err)

	if err := s.resolve(ctx, courseID, studentID); err != nil {
		return err
	}
	exists, err := s.participants.Exists(ctx, courseID, studentID)
	if err != nil {
		return s.internal(err, "failed to check participation", courseID, studentID)
	}
	if exists {
		return ErrAlreadyAssigned
	}
	participant := &models.CourseParticipant{CourseID: courseID, StudentID: studentID}
	if err := s.participants.Create(ctx, participant); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			// lost the race against a concurrent assign
			return ErrAlreadyAssigned
		case errors.Is(err, repository.ErrForeignKey):
			return appErrors.Clone(appErrors.ErrNotFound, "")
		}
		return s.internal(err, "failed to create participation", courseID, studentID)
	}
	s.logger.Info("student assigned", zap.Int64("course_id", courseID), zap.Int64("student_id", studentID))
	return nil
}

// Unassign removes the participation of studentID in courseID.
func (s *EnrollmentService) Unassign(ctx context.Context, courseID, studentID int64) (err error) {
	defer s.observe(OperationUnassign, &err)

	if err := s.resolve(ctx, courseID, studentID); err != nil {
		return err
	}
	deleted, err := s.participants.Delete(ctx, courseID, studentID)
	if err != nil {
		return s.internal(err, "failed to delete participation", courseID, studentID)
	}
	if !deleted {
		return ErrNotAssigned
	}
	s.logger.Info("student unassigned", zap.Int64("course_id", courseID), zap.Int64("student_id", studentID))
	return nil
}

// SetCompleted marks the participation of studentID in courseID as completed or not.
func (s *EnrollmentService) SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) (err error) {
	defer s.observe(OperationComplete, &err)

	if err := s.resolve(ctx, courseID, studentID); err != nil {
		return err
	}
	if err := s.participants.SetCompleted(ctx, courseID, studentID, completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotAssigned
		}
		return s.internal(err, "failed to update participation", courseID, studentID)
	}
	return nil
}

func (s *EnrollmentService) resolve(ctx context.Context, courseID, studentID int64) error {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCourseNotFound
		}
		return s.internal(err, "failed to load course", courseID, studentID)
	}
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStudentNotFound
		}
		return s.internal(err, "failed to load student", courseID, studentID)
	}
	return nil
}

func (s *EnrollmentService) internal(err error, message string, courseID, studentID int64) error {
	s.logger.Error(message, zap.Error(err), zap.Int64("course_id", courseID), zap.Int64("student_id", studentID))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func (s *EnrollmentService) observe(operation string, err *error) {
	if s.recorder == nil {
		return
	}
	outcome := "ok"
	switch {
	case *err == nil:
	case errors.Is(*err, ErrAlreadyAssigned):
		outcome = "already_assigned"
	case errors.Is(*err, ErrNotAssigned):
		outcome = "not_assigned"
	default:
		outcome = appErrors.FromError(*err).Code
	}
	s.recorder.ObserveEnrollment(operation, outcome)
}
