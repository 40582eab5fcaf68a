package service

import (
	"context"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/payment"
)

type CatalogService interface {
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	// CategoryListing returns the category's items grouped under canonical
	// subcategory keys.
	CategoryListing(ctx context.Context, categoryKey string) (map[string][]domain.Item, error)
	FeaturedItems(ctx context.Context, count int32) ([]domain.Item, error)
	SetQuantity(ctx context.Context, itemID string, quantity int32) error
	DeleteItem(ctx context.Context, itemID string) error
}

type BookingService interface {
	BookItem(ctx context.Context, userID string, req *BookingRequest) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]domain.UserBooking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error
	DeleteBooking(ctx context.Context, bookingID string) error
	RecordPaymentResult(ctx context.Context, callback *payment.STKCallback) error
	ExpireStalePendingBookings(ctx context.Context, olderThanHours int) (int, error)
}

type UserService interface {
	Register(ctx context.Context, fullName, email, contactNumber, idNumber, password string) (*domain.User, error)
	// Login returns the authenticated user and a signed session token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// RequestPasswordReset reports the same outcome whether or not the email
	// is registered, to prevent account enumeration.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type PaymentService interface {
	InitiateSTKPush(ctx context.Context, phone string, amount float64, accountReference, description string) (*payment.STKPushResponse, error)
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}
