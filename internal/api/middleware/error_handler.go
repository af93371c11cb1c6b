package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"conrad-voice/internal/api/errors"
)

// ErrorHandler middleware handles errors consistently across the API.
// A single request's failure must never crash the service.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString("request_id")

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
			apiErr.RequestID = requestID
		case error:
			logger.Error("internal server error",
				zap.String("error", err.Error()),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = &errors.APIError{
				Kind:      errors.KindInternal,
				Message:   "Internal server error",
				RequestID: requestID,
			}
		default:
			logger.Error("unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = &errors.APIError{
				Kind:      errors.KindInternal,
				Message:   "Internal server error",
				RequestID: requestID,
			}
		}

		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper function for handlers to return errors
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if apiErr, ok := err.(*errors.APIError); ok {
		apiErr.RequestID = c.GetString("request_id")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	// Not an APIError: let the recovery middleware shape it
	panic(err)
}
