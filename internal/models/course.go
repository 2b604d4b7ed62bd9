package models

import "time"

// Course is a scheduled unit students can be assigned to. StartDate is not
// required to precede EndDate.
type Course struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
}

// CourseSummary is a course together with its total participant count.
type CourseSummary struct {
	Course
	StudentsCount int `db:"students_count" json:"students_count"`
}

// CourseWithParticipants bundles a course summary with the first page of its participants.
type CourseWithParticipants struct {
	CourseSummary
	Participants []ParticipantDetail
}
