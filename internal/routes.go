package internal

import (
	"holidaze/internal/controllers"
	"holidaze/internal/providers"
	"net/http"
)

func InitRoutes(
	authController *controllers.AuthController,
	ratingController *controllers.RatingController,
	venueController *controllers.VenueController,
	bookingController *controllers.BookingController,
	receiptController *controllers.ReceiptController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/auth/login", http.HandlerFunc(authController.Login))
	routers.Post("/auth/logout", http.HandlerFunc(authController.Logout))
	routers.Get("/profile", http.HandlerFunc(authController.Profile))

	routers.Get("/ratings", http.HandlerFunc(ratingController.List))
	routers.Post("/ratings", http.HandlerFunc(ratingController.Submit))
	routers.Get("/rating", http.HandlerFunc(ratingController.ByBooking))
	routers.Get("/rating/venue", http.HandlerFunc(ratingController.ByVenue))

	routers.Post("/venues", http.HandlerFunc(venueController.Create))
	routers.Post("/venues/validate", http.HandlerFunc(venueController.Validate))

	routers.Post("/bookings", http.HandlerFunc(bookingController.Create))

	routers.Get("/profile/receipt", http.HandlerFunc(receiptController.Receipt))
	routers.Post("/profile/receipt/dismiss", http.HandlerFunc(receiptController.Dismiss))
	routers.Post("/profile/receipt/view-bookings", http.HandlerFunc(receiptController.ViewBookings))
	return routers
}
