package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/courses-api/pkg/response"
)

type enrollmentService interface {
	Assign(ctx context.Context, courseID, studentID int64) error
	Unassign(ctx context.Context, courseID, studentID int64) error
	SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error
}

// EnrollmentHandler exposes the course participation actions.
type EnrollmentHandler struct {
	enrollments enrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Assign godoc
// @Summary Assign student to course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Param student_id path int true "Student ID"
// @Success 201 {object} object
// @Failure 400 {array} errors.Error
// @Failure 404 {array} errors.Error
// @Router /courses/{id}/assign/{student_id} [post]
func (h *EnrollmentHandler) Assign(c *gin.Context) {
	h.run(c, h.enrollments.Assign)
}

// Unassign godoc
// @Summary Unassign student from course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Param student_id path int true "Student ID"
// @Success 201 {object} object
// @Failure 400 {array} errors.Error
// @Failure 404 {array} errors.Error
// @Router /courses/{id}/unassign/{student_id} [post]
func (h *EnrollmentHandler) Unassign(c *gin.Context) {
	h.run(c, h.enrollments.Unassign)
}

// Complete godoc
// @Summary Mark a participation as completed
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Param student_id path int true "Student ID"
// @Success 201 {object} object
// @Failure 400 {array} errors.Error
// @Failure 404 {array} errors.Error
// @Router /courses/{id}/complete/{student_id} [post]
func (h *EnrollmentHandler) Complete(c *gin.Context) {
	h.run(c, func(ctx context.Context, courseID, studentID int64) error {
		return h.enrollments.SetCompleted(ctx, courseID, studentID, true)
	})
}

func (h *EnrollmentHandler) run(c *gin.Context, action func(ctx context.Context, courseID, studentID int64) error) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	studentID, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	if err := action(c.Request.Context(), courseID, studentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{})
}
