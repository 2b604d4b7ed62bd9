package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/noah-isme/courses-api/internal/models"
	"github.com/noah-isme/courses-api/internal/repository"
)

type fakeParticipants struct {
	rows      []models.CourseParticipant
	nextID    int64
	listCalls int
	createErr error
	students  *fakeStudents
}

func (f *fakeParticipants) find(courseID, studentID int64) int {
	for i, row := range f.rows {
		if row.CourseID == courseID && row.StudentID == studentID {
			return i
		}
	}
	return -1
}

func (f *fakeParticipants) Exists(ctx context.Context, courseID, studentID int64) (bool, error) {
	return f.find(courseID, studentID) >= 0, nil
}

func (f *fakeParticipants) Create(ctx context.Context, participant *models.CourseParticipant) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.find(participant.CourseID, participant.StudentID) >= 0 {
		return fmt.Errorf("create participant: %w", repository.ErrDuplicate)
	}
	f.nextID++
	participant.ID = f.nextID
	f.rows = append(f.rows, *participant)
	return nil
}

func (f *fakeParticipants) Delete(ctx context.Context, courseID, studentID int64) (bool, error) {
	i := f.find(courseID, studentID)
	if i < 0 {
		return false, nil
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return true, nil
}

func (f *fakeParticipants) SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error {
	i := f.find(courseID, studentID)
	if i < 0 {
		return sql.ErrNoRows
	}
	f.rows[i].Completed = completed
	return nil
}

func (f *fakeParticipants) ListFirstByCourses(ctx context.Context, courseIDs []int64, limit int) ([]models.ParticipantDetail, error) {
	f.listCalls++
	wanted := map[int64]bool{}
	for _, id := range courseIDs {
		wanted[id] = true
	}
	perCourse := map[int64]int{}
	out := []models.ParticipantDetail{}
	for _, row := range f.rows {
		if !wanted[row.CourseID] || perCourse[row.CourseID] >= limit {
			continue
		}
		perCourse[row.CourseID]++
		student := f.students.byID[row.StudentID]
		out = append(out, models.ParticipantDetail{
			CourseID: row.CourseID, StudentID: row.StudentID, Completed: row.Completed,
			FirstName: student.FirstName, LastName: student.LastName, Email: student.Email,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (f *fakeParticipants) count(courseID int64) int {
	n := 0
	for _, row := range f.rows {
		if row.CourseID == courseID {
			n++
		}
	}
	return n
}

type fakeCourses struct {
	byID         map[int64]models.Course
	order        []int64
	participants *fakeParticipants
	listCalls    int
}

func (f *fakeCourses) add(course models.Course) {
	if f.byID == nil {
		f.byID = map[int64]models.Course{}
	}
	course.ID = int64(len(f.order) + 1)
	f.byID[course.ID] = course
	f.order = append(f.order, course.ID)
}

func (f *fakeCourses) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &course, nil
}

func (f *fakeCourses) ListSummaries(ctx context.Context) ([]models.CourseSummary, error) {
	f.listCalls++
	out := []models.CourseSummary{}
	for _, id := range f.order {
		if course, ok := f.byID[id]; ok {
			out = append(out, models.CourseSummary{Course: course, StudentsCount: f.participants.count(id)})
		}
	}
	return out, nil
}

func (f *fakeCourses) FindSummaryByID(ctx context.Context, id int64) (*models.CourseSummary, error) {
	course, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.CourseSummary{Course: course, StudentsCount: f.participants.count(id)}, nil
}

func (f *fakeCourses) Create(ctx context.Context, course *models.Course) error {
	f.add(*course)
	course.ID = int64(len(f.order))
	return nil
}

func (f *fakeCourses) Update(ctx context.Context, course *models.Course) error {
	if _, ok := f.byID[course.ID]; !ok {
		return sql.ErrNoRows
	}
	f.byID[course.ID] = *course
	return nil
}

func (f *fakeCourses) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.byID, id)
	kept := f.participants.rows[:0]
	for _, row := range f.participants.rows {
		if row.CourseID != id {
			kept = append(kept, row)
		}
	}
	f.participants.rows = kept
	return nil
}

type fakeStudents struct {
	byID  map[int64]models.Student
	order []int64
}

func (f *fakeStudents) add(first, last, email string) models.Student {
	if f.byID == nil {
		f.byID = map[int64]models.Student{}
	}
	student := models.Student{ID: int64(len(f.order) + 1), FirstName: first, LastName: last, Email: email}
	f.byID[student.ID] = student
	f.order = append(f.order, student.ID)
	return student
}

func (f *fakeStudents) List(ctx context.Context) ([]models.Student, error) {
	out := []models.Student{}
	for _, id := range f.order {
		if s, ok := f.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudents) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &student, nil
}

func (f *fakeStudents) Create(ctx context.Context, student *models.Student) error {
	created := f.add(student.FirstName, student.LastName, student.Email)
	student.ID = created.ID
	return nil
}

func (f *fakeStudents) Update(ctx context.Context, student *models.Student) error {
	if _, ok := f.byID[student.ID]; !ok {
		return sql.ErrNoRows
	}
	f.byID[student.ID] = *student
	return nil
}

func (f *fakeStudents) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

// fakeReport aggregates the fake stores the way the SQL report does.
type fakeReport struct {
	students     *fakeStudents
	participants *fakeParticipants
	calls        int
	err          error
}

func (f *fakeReport) StudentCourseStats(ctx context.Context) ([]models.StudentCourseStats, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.StudentCourseStats{}
	for _, id := range f.students.order {
		student, ok := f.students.byID[id]
		if !ok {
			continue
		}
		row := models.StudentCourseStats{StudentID: id, FullName: strings.TrimSpace(student.FirstName + " " + student.LastName)}
		for _, p := range f.participants.rows {
			if p.StudentID == id {
				row.NumAssigned++
				if p.Completed {
					row.NumCompleted++
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}

type recordedOutcome struct {
	operation string
	outcome   string
}

type fakeRecorder struct {
	outcomes []recordedOutcome
}

func (f *fakeRecorder) ObserveEnrollment(operation, outcome string) {
	f.outcomes = append(f.outcomes, recordedOutcome{operation, outcome})
}

// fixture wires the fakes together.
type fixture struct {
	courses      *fakeCourses
	students     *fakeStudents
	participants *fakeParticipants
}

func newFixture(courses, students int) *fixture {
	st := &fakeStudents{}
	p := &fakeParticipants{students: st}
	c := &fakeCourses{participants: p}
	for i := 0; i < courses; i++ {
		c.add(models.Course{Name: fmt.Sprintf("My awesome course #%d", i), Description: "no description"})
	}
	for i := 0; i < students; i++ {
		st.add(fmt.Sprintf("Student #%d", i), "-", fmt.Sprintf("student_%d@mail.com", i))
	}
	return &fixture{courses: c, students: st, participants: p}
}
