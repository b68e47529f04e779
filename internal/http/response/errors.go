package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/swiftparcel/swiftparcel-backend/internal/pkg/errors"
)

// FromError maps the service error taxonomy onto HTTP statuses and stable
// machine codes. Authentication failures stay deliberately vague so callers
// cannot probe which accounts exist.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, pkgerrors.ErrDuplicateIdentity):
		RespondErrorMessage(c, http.StatusConflict, "duplicate_identity", "email or mobile already registered")
	case errors.Is(err, pkgerrors.ErrInvalidCredentials):
		RespondErrorMessage(c, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		RespondErrorMessage(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, pkgerrors.ErrAccessDenied):
		RespondErrorMessage(c, http.StatusForbidden, "access_denied", "access denied")
	case errors.Is(err, pkgerrors.ErrNotFound):
		RespondErrorMessage(c, http.StatusNotFound, "not_found", "not found")
	default:
		RespondErrorMessage(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
