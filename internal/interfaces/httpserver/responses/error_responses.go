package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code      string `json:"code,omitempty"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps domain errors to HTTP responses. Platform errors
// carry their own status; anything else becomes a 500 with the
// fallback message and full detail logged by the caller.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		errorMessage := platformErr.Message
		if errorMessage == "" {
			errorMessage = message
		}

		reqCtx.AbortWithStatusJSON(platformErr.HTTPStatus(), ErrorResponse{
			Code:      platformErr.GetUUID(),
			Error:     errorMessage,
			Message:   errorMessage,
			RequestID: platformErr.GetRequestID(),
		})
		return
	}

	// Non-platform errors never leak internal detail.
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Message: message,
	})
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, code string) {
	ctx := reqCtx.Request.Context()
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, nil, code)
	HandleError(reqCtx, err, message)
}
