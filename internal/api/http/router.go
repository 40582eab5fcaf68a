package http

import (
	"unirent-backend/internal/security"
	"unirent-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all route handlers. Booking routes sit behind the session
// token middleware; catalog and auth routes are public. The payment callback
// is public because the provider calls it directly.
func NewRouter(
	userSvc service.UserService,
	catalogSvc service.CatalogService,
	bookingSvc service.BookingService,
	tokens security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()

	authHandler := NewAuthHandler(userSvc)
	catalogHandler := NewCatalogHandler(catalogSvc)
	bookingHandler := NewBookingHandler(bookingSvc, catalogSvc)

	// Auth
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	router.HandleFunc("/reset_password", authHandler.RequestPasswordReset).Methods("POST")
	router.HandleFunc("/new_password", authHandler.ResetPassword).Methods("POST")

	// Catalog
	router.HandleFunc("/", catalogHandler.Home).Methods("GET")
	router.HandleFunc("/items/featured", catalogHandler.Featured).Methods("GET")
	router.HandleFunc("/items/{item_id}", catalogHandler.GetItem).Methods("GET")
	router.HandleFunc("/items/{item_id}/quantity", catalogHandler.SetQuantity).Methods("PUT")
	router.HandleFunc("/items/{item_id}", catalogHandler.DeleteItem).Methods("DELETE")
	router.HandleFunc("/categories/{category}", catalogHandler.Category).Methods("GET")

	// Payment provider callback
	router.HandleFunc("/payments/callback", bookingHandler.PaymentCallback).Methods("POST")

	// Bookings (authenticated)
	authed := router.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))
	authed.HandleFunc("/book/{item_id}", bookingHandler.BookingForm).Methods("GET")
	authed.HandleFunc("/bookings", bookingHandler.SubmitBooking).Methods("POST")
	authed.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	authed.HandleFunc("/bookings/{booking_id}/cancel", bookingHandler.CancelBooking).Methods("POST")
	authed.HandleFunc("/bookings/{booking_id}", bookingHandler.DeleteBooking).Methods("DELETE")

	return router
}
