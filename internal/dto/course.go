package dto

import (
	"time"

	"github.com/noah-isme/courses-api/internal/models"
)

// ParticipantResponse is the public shape of a course participant.
type ParticipantResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CourseResponse is the public shape of a course in listings and detail views.
type CourseResponse struct {
	Name          string                `json:"name"`
	StartDate     time.Time             `json:"start_date"`
	EndDate       time.Time             `json:"end_date"`
	StudentsCount int                   `json:"students_count"`
	Participants  []ParticipantResponse `json:"participants"`
}

// SerializeOptions tweaks course serialization.
type SerializeOptions struct {
	// MirrorLastName reproduces the legacy output where last_name carries the
	// first name. Clients still depend on it.
	MirrorLastName bool
}

// NewParticipantResponse maps a participant detail to its public shape.
func NewParticipantResponse(p models.ParticipantDetail, opts SerializeOptions) ParticipantResponse {
	lastName := p.LastName
	if opts.MirrorLastName {
		lastName = p.FirstName
	}
	return ParticipantResponse{FirstName: p.FirstName, LastName: lastName, Email: p.Email}
}

// NewCourseResponse maps a course and its first participants to the public shape.
func NewCourseResponse(c models.CourseWithParticipants, opts SerializeOptions) CourseResponse {
	participants := make([]ParticipantResponse, 0, len(c.Participants))
	for _, p := range c.Participants {
		participants = append(participants, NewParticipantResponse(p, opts))
	}
	return CourseResponse{
		Name:          c.Name,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		StudentsCount: c.StudentsCount,
		Participants:  participants,
	}
}

// NewCourseResponses maps a listing preserving order. Never returns nil.
func NewCourseResponses(courses []models.CourseWithParticipants, opts SerializeOptions) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c, opts))
	}
	return out
}

// CourseRequest is the payload for creating or replacing a course.
type CourseRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
}
