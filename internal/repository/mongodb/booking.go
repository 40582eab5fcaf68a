package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &bookingRepository{coll: db.Collection("bookings")}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	booking.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *bookingRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*domain.Booking, error) {
	return r.findOne(ctx, bson.M{"checkout_request_id": checkoutRequestID})
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []domain.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

// ListByUser joins each booking with its item document and denormalizes the
// display fields the bookings page needs. Bookings whose item has been
// deleted keep their snapshotted item_name.
func (r *bookingRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.UserBooking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "items",
			"localField":   "item_id",
			"foreignField": "_id",
			"as":           "item_details",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$item_details",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{
			"item_name":     bson.M{"$ifNull": bson.A{"$item_details.name", "$item_name"}},
			"item_image":    "$item_details.image_url",
			"item_price":    "$item_details.price",
			"item_category": "$item_details.category",
		}}},
		{{Key: "$project", Value: bson.M{"item_details": 0}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate user bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []domain.UserBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode user bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) ListStale(ctx context.Context, status domain.BookingStatus, before time.Time) ([]domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"status":     status,
		"created_at": bson.M{"$lt": before},
	})
	if err != nil {
		return nil, fmt.Errorf("find stale bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []domain.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode stale bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) findOne(ctx context.Context, filter bson.M) (*domain.Booking, error) {
	booking := &domain.Booking{}
	err := r.coll.FindOne(ctx, filter).Decode(booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}
