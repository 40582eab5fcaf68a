package service_test

import (
	"context"
	"time"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/payment"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListBySubcategory(ctx context.Context, subcategory string) ([]domain.Item, error) {
	args := m.Called(ctx, subcategory)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListFeatured(ctx context.Context, count int32) ([]domain.Item, error) {
	args := m.Called(ctx, count)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*domain.Booking, error) {
	args := m.Called(ctx, checkoutRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.UserBooking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserBooking), args.Error(1)
}
func (m *MockBookingRepo) ListStale(ctx context.Context, status domain.BookingStatus, before time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, status, before)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) InitiateSTKPush(ctx context.Context, phone string, amount float64, accountReference, description string) (*payment.STKPushResponse, error) {
	args := m.Called(ctx, phone, amount, accountReference, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.STKPushResponse), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, token string) error {
	args := m.Called(ctx, email, token)
	return args.Error(0)
}
