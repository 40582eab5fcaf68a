package repository

import (
	"context"
	"time"

	"unirent-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Item, error)
	ListBySubcategory(ctx context.Context, subcategory string) ([]domain.Item, error)
	ListFeatured(ctx context.Context, count int32) ([]domain.Item, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.UserBooking, error)
	ListStale(ctx context.Context, status domain.BookingStatus, before time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}
