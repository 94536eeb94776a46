package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
)

// AuthService checks staff credentials against the users table. This is a
// direct stored-credential equality check with no session or token model;
// hardening beyond that is out of scope for this service.
type AuthService struct {
	users database.UserRepository
	audit *AuditService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users database.UserRepository, audit *AuditService) *AuthService {
	return &AuthService{users: users, audit: audit}
}

// Login matches the supplied credentials and records the attempt. Returns
// ErrInvalidCredentials when no account matches.
func (s *AuthService) Login(ctx context.Context, name, password string) (*models.User, error) {
	user, err := s.users.FindUserByCredentials(ctx, name, password)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			s.auditLogin(ctx, 0, name, models.RoleUnknown, models.FailureReasonInvalidLogin)
			return nil, ErrInvalidCredentials
		}
		s.auditLogin(ctx, 0, name, models.RoleUnknown, models.FailureReasonDatabaseError)
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}

	s.auditLogin(ctx, user.ID, user.Name, user.Role, "")
	return user, nil
}

func (s *AuthService) auditLogin(ctx context.Context, userID uint, userName, role, failureReason string) {
	entry := &models.LogEntry{
		ActionType: models.ActionLogin,
		UserID:     userID,
		UserName:   userName,
		UserRole:   role,
		Status:     models.StatusSuccess,
	}
	if failureReason != "" {
		entry.Status = models.StatusFailed
		entry.FailureReason = failureReason
	}
	s.audit.Append(ctx, entry)
}
