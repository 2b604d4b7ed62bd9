package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/courses-api/internal/dto"
	"github.com/noah-isme/courses-api/internal/models"
	appErrors "github.com/noah-isme/courses-api/pkg/errors"
)

func enroll(t *testing.T, f *fixture, courseID int64, students int) {
	t.Helper()
	for i := 1; i <= students; i++ {
		require.NoError(t, f.participants.Create(context.Background(), &models.CourseParticipant{CourseID: courseID, StudentID: int64(i)}))
	}
}

func TestCourseServiceListEmpty(t *testing.T) {
	f := newFixture(0, 0)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{})

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestCourseServiceListCount(t *testing.T) {
	f := newFixture(10, 0)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{})

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 10)
	for _, c := range courses {
		assert.Equal(t, 0, c.StudentsCount)
		assert.NotNil(t, c.Participants)
		assert.Empty(t, c.Participants)
	}
}

func TestCourseServiceListBelowLimit(t *testing.T) {
	f := newFixture(1, 2)
	enroll(t, f, 1, 2)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{MirrorLastName: true})

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, 2, courses[0].StudentsCount)
	require.Len(t, courses[0].Participants, 2)
	assert.Equal(t, dto.ParticipantResponse{FirstName: "Student #0", LastName: "Student #0", Email: "student_0@mail.com"}, courses[0].Participants[0])
}

func TestCourseServiceListTruncatesParticipants(t *testing.T) {
	f := newFixture(5, 20)
	enroll(t, f, 1, 20)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{})

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 5)
	assert.Equal(t, 20, courses[0].StudentsCount)
	assert.Len(t, courses[0].Participants, 10)
	assert.Equal(t, "-", courses[0].Participants[0].LastName)

	// one summary query plus one participants query
	assert.Equal(t, 1, f.courses.listCalls)
	assert.Equal(t, 1, f.participants.listCalls)
}

func TestCourseServiceListCustomLimit(t *testing.T) {
	f := newFixture(1, 5)
	enroll(t, f, 1, 5)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{ParticipantsLimit: 3})

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, courses[0].StudentsCount)
	assert.Len(t, courses[0].Participants, 3)
}

func TestCourseServiceGet(t *testing.T) {
	f := newFixture(2, 3)
	enroll(t, f, 2, 3)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{})

	course, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "My awesome course #1", course.Name)
	assert.Equal(t, 3, course.StudentsCount)
	assert.Len(t, course.Participants, 3)

	_, err = svc.Get(context.Background(), 4242)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseServiceCreateValidation(t *testing.T) {
	f := newFixture(0, 0)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{})

	_, err := svc.Create(context.Background(), dto.CourseRequest{Description: "x"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "name: This field is required.")
	assert.Contains(t, appErr.Message, "start_date: This field is required.")
}

func TestCourseServiceCreateUpdateDelete(t *testing.T) {
	f := newFixture(0, 1)
	svc := NewCourseService(f.courses, f.participants, nil, nil, CourseServiceConfig{})
	start := time.Now().UTC()
	req := dto.CourseRequest{Name: "Go", Description: "concurrency", StartDate: start, EndDate: start.Add(time.Hour)}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	req.Name = "Go 2"
	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Go 2", updated.Name)

	_, err = svc.Update(context.Background(), 99, req)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	enroll(t, f, created.ID, 1)
	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, f.participants.rows)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrCourseNotFound)
}
