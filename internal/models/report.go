package models

// StudentCourseStats aggregates participations for one student.
type StudentCourseStats struct {
	StudentID    int64  `db:"student_id"`
	FullName     string `db:"full_name"`
	NumAssigned  int    `db:"num_assigned"`
	NumCompleted int    `db:"num_completed"`
}
