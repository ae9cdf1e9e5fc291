package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/careerfuture/backend/models"
)

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, models.ErrorResponse{
		Status: models.StatusError,
		Error:  message,
		Code:   code,
	})
}

// guard runs fn and turns a panic into an error, so a handler can answer with
// its own message instead of the generic recovery response.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
