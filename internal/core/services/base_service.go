package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	BusinessAuthorizer portssvc.BusinessAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a business
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, businessID string, requiredRole domain.UserBusinessRole) error {
	if s.BusinessAuthorizer != nil {
		return s.BusinessAuthorizer.AuthorizeUserAction(ctx, userID, businessID, requiredRole)
	}
	s.LogDebug(ctx, "No business authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("business_id", businessID),
		slog.String("required_role", string(requiredRole)))
	return nil
}

// clock is the time source shared by services; tests replace it.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
