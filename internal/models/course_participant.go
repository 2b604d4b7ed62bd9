package models

// CourseParticipant links one student to one course. (course_id, student_id) is unique.
type CourseParticipant struct {
	ID        int64 `db:"id" json:"id"`
	CourseID  int64 `db:"course_id" json:"course_id"`
	StudentID int64 `db:"student_id" json:"student_id"`
	Completed bool  `db:"completed" json:"completed"`
}

// ParticipantDetail enriches a participation with student info.
type ParticipantDetail struct {
	CourseID  int64  `db:"course_id"`
	StudentID int64  `db:"student_id"`
	Completed bool   `db:"completed"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
}
