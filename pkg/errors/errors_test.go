package errors

import (
	"database/sql"
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	err := FromError(sql.ErrConnDone)
	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Clone(ErrNotFound, "Course not found"))
	err := FromError(wrapped)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Course not found", err.Message)
}

func TestCloneMatchesOnlyIdenticalSentinels(t *testing.T) {
	sentinel := New(CodeInvalid, http.StatusBadRequest, "Already assigned to course")
	assert.True(t, stdErrors.Is(Clone(sentinel, ""), sentinel))
	assert.False(t, stdErrors.Is(Clone(sentinel, "other"), sentinel))
	assert.Nil(t, Clone(nil, "x"))
}
