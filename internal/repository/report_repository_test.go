package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepositoryStudentCourseStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(`COUNT\(cp\.id\) FILTER \(WHERE cp\.completed\) AS num_completed\s+FROM students s\s+LEFT JOIN course_participants cp ON cp\.student_id = s\.id\s+GROUP BY s\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "full_name", "num_assigned", "num_completed"}).
			AddRow(1, "Student #0 -", 5, 1).
			AddRow(2, "Student #1 -", 0, 0))

	stats, err := repo.StudentCourseStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 5, stats[0].NumAssigned)
	assert.Equal(t, 1, stats[0].NumCompleted)
	assert.Equal(t, 0, stats[1].NumAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
