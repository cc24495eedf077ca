package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to its HTTP status. Unknown errors are logged and
// reported as "Failed to <action>" without their details.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var draftErr *portssvc.VoucherDraftError
	switch {
	case errors.As(err, &draftErr):
		logger.Warn("Voucher rejected by draft validation", slog.String("reason", string(draftErr.Validation.Failure)))
		c.JSON(http.StatusUnprocessableEntity, dto.ToVoucherValidationErrorResponse(draftErr.Validation))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("action", action))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service call failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// requireUserID writes 401 and returns false when the auth middleware did not set a user.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
