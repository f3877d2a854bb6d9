package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"book-library-api/internal/domains/user"
	"book-library-api/internal/infrastructure/email"
	"book-library-api/pkg/jwt"
	"book-library-api/pkg/logger"
)

const resetCodeTTL = 30 * time.Minute

type userService struct {
	repo    user.Repository
	jwt     *jwt.Manager
	email   email.EmailService
	baseURL string
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager, emailService email.EmailService, baseURL string) user.Service {
	return &userService{
		repo:    repo,
		jwt:     jwtManager,
		email:   emailService,
		baseURL: baseURL,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return "", err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": u.ID,
	})

	return s.jwt.GenerateToken(u.ID)
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (string, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", user.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return "", user.ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(u.ID)
}

func (s *userService) Me(ctx context.Context, userID int64) (*user.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) UpdateData(ctx context.Context, userID int64, req user.UpdateDataRequest) (*user.User, error) {
	u := &user.User{
		ID:       userID,
		Username: req.Username,
		Email:    req.Email,
	}

	if err := s.repo.UpdateData(ctx, u); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *userService) UpdatePassword(ctx context.Context, userID int64, req user.UpdatePasswordRequest) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)) != nil {
		return user.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

// SendResetLink issues a reset code and mails it. An unknown address is not
// an error, so the endpoint does not reveal which emails have accounts.
func (s *userService) SendResetLink(ctx context.Context, emailAddr string) error {
	u, err := s.repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return err
	}

	code := &user.ResetCode{
		UserID:    u.ID,
		HashCode:  uuid.NewString(),
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	if err := s.repo.CreateResetCode(ctx, code); err != nil {
		return err
	}

	data := email.ResetPasswordData{
		Email:     u.Email,
		ResetLink: fmt.Sprintf("%s/api/v1/auth/reset/%s", s.baseURL, code.HashCode),
		ExpiresIn: resetCodeTTL.String(),
	}
	if err := s.email.SendResetPasswordEmail(ctx, data); err != nil {
		// the code stays valid; delivery problems should not 500 the flow
		logger.Error("failed to send reset email", err)
	}

	return nil
}

// ResetPassword consumes a reset code. Reusing the old password burns the
// code anyway so the link cannot be retried.
func (s *userService) ResetPassword(ctx context.Context, hashCode, newPassword string) (string, error) {
	code, err := s.repo.GetResetCode(ctx, hashCode)
	if err != nil {
		return "", err
	}

	u, err := s.repo.GetByID(ctx, code.UserID)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPassword)) == nil {
		if err := s.repo.DeleteResetCode(ctx, code.ID); err != nil {
			return "", err
		}
		return "", user.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, code.UserID, string(hash)); err != nil {
		return "", err
	}
	if err := s.repo.DeleteResetCode(ctx, code.ID); err != nil {
		return "", err
	}

	logger.Info("password reset completed", map[string]interface{}{
		"user_id": code.UserID,
	})

	return s.jwt.GenerateToken(code.UserID)
}
