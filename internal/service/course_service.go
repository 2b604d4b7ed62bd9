package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/courses-api/internal/dto"
	"github.com/noah-isme/courses-api/internal/models"
	appErrors "github.com/noah-isme/courses-api/pkg/errors"
)

const defaultParticipantsLimit = 10

type courseRepository interface {
	ListSummaries(ctx context.Context) ([]models.CourseSummary, error)
	FindSummaryByID(ctx context.Context, id int64) (*models.CourseSummary, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type participantLister interface {
	ListFirstByCourses(ctx context.Context, courseIDs []int64, limit int) ([]models.ParticipantDetail, error)
}

// CourseServiceConfig tunes course serialization.
type CourseServiceConfig struct {
	ParticipantsLimit int
	MirrorLastName    bool
}

// CourseService lists and manages courses.
type CourseService struct {
	repo         courseRepository
	participants participantLister
	validator    *validator.Validate
	logger       *zap.Logger
	cfg          CourseServiceConfig
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, participants participantLister, validate *validator.Validate, logger *zap.Logger, cfg CourseServiceConfig) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ParticipantsLimit <= 0 {
		cfg.ParticipantsLimit = defaultParticipantsLimit
	}
	return &CourseService{repo: repo, participants: participants, validator: validate, logger: logger, cfg: cfg}
}

// List returns every course with its participant count and first participants.
// It issues two queries regardless of the number of courses or participants.
func (s *CourseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	courses, err := s.attachParticipants(ctx, summaries)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseResponses(courses, s.serializeOptions()), nil
}

// Get returns a single course in the listing shape.
func (s *CourseService) Get(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	summary, err := s.repo.FindSummaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	courses, err := s.attachParticipants(ctx, []models.CourseSummary{*summary})
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(courses[0], s.serializeOptions())
	return &resp, nil
}

// Create persists a new course.
func (s *CourseService) Create(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	course := &models.Course{Name: req.Name, Description: req.Description, StartDate: req.StartDate, EndDate: req.EndDate}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	s.logger.Info("course created", zap.Int64("course_id", course.ID))
	return course, nil
}

// Update replaces the attributes of an existing course.
func (s *CourseService) Update(ctx context.Context, id int64, req dto.CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	course := &models.Course{ID: id, Name: req.Name, Description: req.Description, StartDate: req.StartDate, EndDate: req.EndDate}
	if err := s.repo.Update(ctx, course); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return course, nil
}

// Delete removes a course together with its participants.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCourseNotFound
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	s.logger.Info("course deleted", zap.Int64("course_id", id))
	return nil
}

func (s *CourseService) attachParticipants(ctx context.Context, summaries []models.CourseSummary) ([]models.CourseWithParticipants, error) {
	ids := make([]int64, 0, len(summaries))
	for _, summary := range summaries {
		if summary.StudentsCount > 0 {
			ids = append(ids, summary.ID)
		}
	}
	page, err := s.participants.ListFirstByCourses(ctx, ids, s.cfg.ParticipantsLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list participants")
	}
	byCourse := make(map[int64][]models.ParticipantDetail, len(ids))
	for _, p := range page {
		if len(byCourse[p.CourseID]) < s.cfg.ParticipantsLimit {
			byCourse[p.CourseID] = append(byCourse[p.CourseID], p)
		}
	}
	courses := make([]models.CourseWithParticipants, 0, len(summaries))
	for _, summary := range summaries {
		courses = append(courses, models.CourseWithParticipants{CourseSummary: summary, Participants: byCourse[summary.ID]})
	}
	return courses, nil
}

func (s *CourseService) serializeOptions() dto.SerializeOptions {
	return dto.SerializeOptions{MirrorLastName: s.cfg.MirrorLastName}
}
