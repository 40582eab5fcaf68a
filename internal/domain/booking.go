package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "Pending"
	BookingStatusPendingPayment BookingStatus = "Pending Payment"
	BookingStatusConfirmed      BookingStatus = "Confirmed"
	BookingStatusPaymentFailed  BookingStatus = "Payment Failed"
	BookingStatusCancelled      BookingStatus = "Cancelled"
)

type Booking struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ItemID   primitive.ObjectID `json:"item_id" bson:"item_id"`
	// ItemName is snapshotted from the item at booking creation time so the
	// booking stays readable even if the item is later deleted.
	ItemName          string             `json:"item_name" bson:"item_name"`
	UserID            primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name              string             `json:"name" bson:"name"`
	Email             string             `json:"email" bson:"email"`
	Phone             string             `json:"phone" bson:"phone"`
	Location          string             `json:"location" bson:"location"`
	Amount            float64            `json:"amount" bson:"amount"`
	StartDate         time.Time          `json:"start_date" bson:"start_date"`
	EndDate           time.Time          `json:"end_date" bson:"end_date"`
	Status            BookingStatus      `json:"status" bson:"status"`
	CheckoutRequestID string             `json:"checkout_request_id,omitempty" bson:"checkout_request_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserBooking is the aggregation view returned when listing a user's
// bookings: the booking joined with denormalized fields from the item
// document.
type UserBooking struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	ItemID       primitive.ObjectID `json:"item_id" bson:"item_id"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id"`
	ItemName     string             `json:"item_name" bson:"item_name"`
	ItemImage    string             `json:"item_image" bson:"item_image"`
	ItemPrice    float64            `json:"item_price" bson:"item_price"`
	ItemCategory string             `json:"item_category" bson:"item_category"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Location     string             `json:"location" bson:"location"`
	Amount       float64            `json:"amount" bson:"amount"`
	StartDate    time.Time          `json:"start_date" bson:"start_date"`
	EndDate      time.Time          `json:"end_date" bson:"end_date"`
	Status       BookingStatus      `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
