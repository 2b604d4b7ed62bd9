package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/courses-api/pkg/errors"
	"github.com/noah-isme/courses-api/pkg/response"
)

// pathID parses a numeric path parameter. Anything that is not a positive
// integer cannot name a row, so it is reported as not found.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.ErrNotFound)
		return 0, false
	}
	return id, true
}

func invalidPayload(err error) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
}
