package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/savesphere/savings_tracker_app/internal/apperrors"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
	"github.com/savesphere/savings_tracker_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	UserReader portsrepo.UserReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequireAdmin checks that the requesting user exists and holds the ADMIN role.
func (s *BaseService) RequireAdmin(ctx context.Context, requestingUserID string) error {
	user, err := s.UserReader.FindUserByID(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to load requesting user %s: %w", requestingUserID, err)
	}
	if !user.IsAdmin() {
		s.LogDebug(ctx, "Admin access denied",
			slog.String("requesting_user_id", requestingUserID),
			slog.String("role", string(user.Role)))
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireSelfOrAdmin checks that the requesting user is acting on their own
// data or holds the ADMIN role.
func (s *BaseService) RequireSelfOrAdmin(ctx context.Context, targetUserID, requestingUserID string) error {
	if targetUserID == requestingUserID {
		return nil
	}
	return s.RequireAdmin(ctx, requestingUserID)
}
