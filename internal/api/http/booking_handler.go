package http

import (
	"encoding/json"
	"net/http"

	"unirent-backend/internal/logger"
	"unirent-backend/internal/payment"
	"unirent-backend/internal/service"

	"github.com/gorilla/mux"
)

// BookingHandler serves the booking workflow routes
type BookingHandler struct {
	bookingSvc service.BookingService
	catalogSvc service.CatalogService
}

func NewBookingHandler(bookingSvc service.BookingService, catalogSvc service.CatalogService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, catalogSvc: catalogSvc}
}

// BookingForm returns the item a booking form is being opened for.
func (h *BookingHandler) BookingForm(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalogSvc.GetItem(r.Context(), mux.Vars(r)["item_id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type submitBookingRequest struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "You need to login first.")
		return
	}

	var req submitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingSvc.BookItem(r.Context(), userID, &service.BookingRequest{
		ItemID:    req.ItemID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Please login to access this page.")
		return
	}

	bookings, err := h.bookingSvc.ListUserBookings(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Please login to access this page.")
		return
	}

	if err := h.bookingSvc.CancelBooking(r.Context(), userID, mux.Vars(r)["booking_id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Booking cancelled successfully."})
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingSvc.DeleteBooking(r.Context(), mux.Vars(r)["booking_id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Booking deleted"})
}

// PaymentCallback receives the provider's asynchronous STK push result. The
// provider expects a 200 regardless of how the result was applied, so
// failures are logged rather than surfaced.
func (h *BookingHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	var callback payment.STKCallback
	if err := json.NewDecoder(r.Body).Decode(&callback); err != nil {
		logger.Error("malformed payment callback", "error", err)
		respondJSON(w, http.StatusOK, messageResponse{Message: "received"})
		return
	}

	if err := h.bookingSvc.RecordPaymentResult(r.Context(), &callback); err != nil {
		logger.Error("failed to record payment result",
			"checkout_request_id", callback.Body.StkCallback.CheckoutRequestID,
			"error", err,
		)
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "received"})
}
