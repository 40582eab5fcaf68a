package service

import (
	"context"
	"errors"
	"fmt"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/logger"
	"unirent-backend/internal/repository"
	"unirent-backend/internal/security"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const minPasswordLength = 8

type userService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	emailSvc EmailService
}

func NewUserService(userRepo repository.UserRepository, tokens security.TokenManager, emailSvc EmailService) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		emailSvc: emailSvc,
	}
}

func (s *userService) Register(ctx context.Context, fullName, email, contactNumber, idNumber, password string) (*domain.User, error) {
	if fullName == "" || email == "" || contactNumber == "" || idNumber == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FullName:      fullName,
		Email:         email,
		ContactNumber: contactNumber,
		IDNumber:      idNumber,
		PasswordHash:  string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user registered", "user_id", user.ID.Hex())
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, token, nil
}

func (s *userService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Report success for unknown emails too, so the endpoint cannot
			// be used to enumerate accounts.
			logger.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := s.tokens.GeneratePasswordResetToken(user.ID.Hex())
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	if err := s.emailSvc.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	logger.Info("password reset initiated", "user_id", user.ID.Hex())
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	claims, err := s.tokens.ValidatePasswordResetToken(token)
	if err != nil {
		return err
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return security.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	logger.Info("password updated", "user_id", claims.UserID)
	return nil
}
