package service_test

import (
	"context"
	"testing"
	"time"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/security"
	"unirent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-at-least-thirty-two-chars-long"

func newTestTokenManager() security.TokenManager {
	return security.NewTokenManager(testJWTSecret, time.Hour, time.Hour)
}

func TestRegister_HashesPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, domain.ErrUserNotFound)

	var created *domain.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).
		Return(nil)

	user, err := svc.Register(context.Background(), "Jane Wanjiku", "jane@example.com", "254712345678", "12345678", "s3cret-pass")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{Email: "jane@example.com"}, nil)

	_, err := svc.Register(context.Background(), "Jane Wanjiku", "jane@example.com", "254712345678", "12345678", "s3cret-pass")

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	_, err := svc.Register(context.Background(), "Jane Wanjiku", "jane@example.com", "254712345678", "12345678", "short")

	assert.ErrorIs(t, err, domain.ErrValidation)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestRegister_MissingFields(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	_, err := svc.Register(context.Background(), "Jane Wanjiku", "", "254712345678", "12345678", "s3cret-pass")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	tokens := newTestTokenManager()
	svc := service.NewUserService(userRepo, tokens, emailSvc)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userID := primitive.NewObjectID()
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: userID, Email: "jane@example.com", PasswordHash: string(hash)}, nil)

	user, token, err := svc.Login(context.Background(), "jane@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	claims, err := tokens.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{Email: "jane@example.com", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), "jane@example.com", "wrong-pass")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRequestPasswordReset_UnknownEmailLooksIdentical(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewUserService(userRepo, newTestTokenManager(), emailSvc)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	emailSvc.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestPasswordReset_SendsEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	tokens := newTestTokenManager()
	svc := service.NewUserService(userRepo, tokens, emailSvc)

	userID := primitive.NewObjectID()
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil)

	var sentToken string
	emailSvc.On("SendPasswordReset", mock.Anything, "jane@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			sentToken = args.String(2)
		}).
		Return(nil)

	err := svc.RequestPasswordReset(context.Background(), "jane@example.com")

	require.NoError(t, err)
	claims, err := tokens.ValidatePasswordResetToken(sentToken)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), claims.UserID)
}

func TestResetPassword_UpdatesHash(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	tokens := newTestTokenManager()
	svc := service.NewUserService(userRepo, tokens, emailSvc)

	userID := primitive.NewObjectID()
	token, err := tokens.GeneratePasswordResetToken(userID.Hex())
	require.NoError(t, err)

	var storedHash string
	userRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	err = svc.ResetPassword(context.Background(), token, "new-s3cret-pass")

	require.NoError(t, err)
	assert.NotEqual(t, "new-s3cret-pass", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("new-s3cret-pass")))
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	expired := security.NewTokenManager(testJWTSecret, time.Hour, -time.Minute)
	svc := service.NewUserService(userRepo, expired, emailSvc)

	token, err := expired.GeneratePasswordResetToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "new-s3cret-pass")

	assert.ErrorIs(t, err, security.ErrExpiredToken)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword_SessionTokenRejected(t *testing.T) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	tokens := newTestTokenManager()
	svc := service.NewUserService(userRepo, tokens, emailSvc)

	token, err := tokens.GenerateSessionToken(primitive.NewObjectID().Hex(), "jane@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "new-s3cret-pass")

	assert.ErrorIs(t, err, security.ErrWrongTokenType)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
