package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/logger"
	"unirent-backend/internal/payment"
	"unirent-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPaymentFailed   = errors.New("payment initiation failed")
	ErrBookingCreation = errors.New("booking creation failed")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
)

const dateLayout = "2006-01-02"

// defaultRentalDays is the rental window applied when no end date is given.
const defaultRentalDays = 7

// BookingRequest carries the booking form fields. EndDate may be empty, in
// which case the default rental window is applied.
type BookingRequest struct {
	ItemID    string
	Name      string
	Email     string
	Phone     string
	Location  string
	StartDate string
	EndDate   string
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	paymentSvc  PaymentService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	paymentSvc PaymentService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		paymentSvc:  paymentSvc,
	}
}

// BookItem runs the booking workflow in fixed order: availability check,
// payment initiation, booking persistence, inventory decrement. The
// decrement is intentionally decoupled from the booking outcome: if it
// fails the booking stands and the stale quantity is logged.
func (s *bookingService) BookItem(ctx context.Context, userID string, req *BookingRequest) (*domain.Booking, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}
	itemID, err := primitive.ObjectIDFromHex(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item id", domain.ErrValidation)
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, domain.ErrItemUnavailable
		}
		return nil, err
	}
	if item.Quantity <= 0 {
		return nil, domain.ErrItemUnavailable
	}

	startDate, endDate, err := parseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	accountReference := fmt.Sprintf("ITEM_%s", req.ItemID)
	resp, err := s.paymentSvc.InitiateSTKPush(ctx, req.Phone, item.Price, accountReference, item.Name)
	if err != nil {
		logger.Error("STK push failed", "item_id", req.ItemID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if !resp.Accepted() {
		logger.Warn("STK push rejected by provider",
			"item_id", req.ItemID,
			"response_code", resp.ResponseCode,
			"response_description", resp.ResponseDescription,
		)
		return nil, ErrPaymentFailed
	}

	booking := &domain.Booking{
		ItemID:            itemID,
		ItemName:          item.Name,
		UserID:            uid,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Location:          req.Location,
		Amount:            item.Price,
		StartDate:         startDate,
		EndDate:           endDate,
		Status:            domain.BookingStatusPending,
		CheckoutRequestID: resp.CheckoutRequestID,
	}
	if err := validateBooking(booking); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingCreation, err)
	}
	logger.Info("booking created", "booking_id", booking.ID.Hex(), "item_id", req.ItemID, "user_id", userID)

	// Best effort: the booking stands even if the decrement fails. The
	// catalog quantity going stale here is a known consistency gap.
	if err := s.itemRepo.UpdateQuantity(ctx, itemID, item.Quantity-1); err != nil {
		logger.Error("inventory update failed after booking creation",
			"booking_id", booking.ID.Hex(),
			"item_id", req.ItemID,
			"error", err,
		)
	}

	return booking, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.UserBooking, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}
	return s.bookingRepo.ListByUser(ctx, uid)
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	id, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.UserID.Hex() != userID {
		return ErrNotBookingOwner
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled); err != nil {
		return err
	}
	logger.Info("booking cancelled", "booking_id", bookingID, "user_id", userID)
	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id", domain.ErrValidation)
	}
	return s.bookingRepo.Delete(ctx, id)
}

// RecordPaymentResult applies the provider's asynchronous push outcome to
// the matching booking.
func (s *bookingService) RecordPaymentResult(ctx context.Context, callback *payment.STKCallback) error {
	checkoutID := callback.Body.StkCallback.CheckoutRequestID
	booking, err := s.bookingRepo.GetByCheckoutRequestID(ctx, checkoutID)
	if err != nil {
		return err
	}

	status := domain.BookingStatusConfirmed
	if !callback.Succeeded() {
		status = domain.BookingStatusPaymentFailed
	}
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, status); err != nil {
		return err
	}
	logger.Info("payment result recorded",
		"booking_id", booking.ID.Hex(),
		"checkout_request_id", checkoutID,
		"result_code", callback.Body.StkCallback.ResultCode,
		"status", status,
	)
	return nil
}

// ExpireStalePendingBookings cancels bookings left Pending past the cutoff.
// Inventory is not restored; the quantity gap stays visible in the catalog.
func (s *bookingService) ExpireStalePendingBookings(ctx context.Context, olderThanHours int) (int, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(olderThanHours) * time.Hour)
	stale, err := s.bookingRepo.ListStale(ctx, domain.BookingStatusPending, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, booking := range stale {
		if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled); err != nil {
			logger.Error("failed to expire stale booking", "booking_id", booking.ID.Hex(), "error", err)
			continue
		}
		logger.Info("stale pending booking expired", "booking_id", booking.ID.Hex(), "created_at", booking.CreatedAt)
		expired++
	}
	return expired, nil
}

func parseBookingDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, start)
	}

	if end == "" {
		return startDate, startDate.AddDate(0, 0, defaultRentalDays), nil
	}

	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, end)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}
	return startDate, endDate, nil
}

func validateBooking(b *domain.Booking) error {
	switch {
	case b.Name == "":
		return fmt.Errorf("%w: name is required", ErrBookingCreation)
	case b.Email == "":
		return fmt.Errorf("%w: email is required", ErrBookingCreation)
	case b.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrBookingCreation)
	case b.Location == "":
		return fmt.Errorf("%w: location is required", ErrBookingCreation)
	}
	return nil
}
