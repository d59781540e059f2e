package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-backend/internal/handlers"
	"hotel-backend/internal/middleware"
	"hotel-backend/internal/models"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	hotelHandler *handlers.HotelHandler,
	reservationHandler *handlers.ReservationHandler,
	paymentHandler *handlers.PaymentHandler,
	supplyHandler *handlers.SupplyHandler,
	nusukHandler *handlers.NusukHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireRole(models.RoleAdmin))
	usersAPI.HandleFunc("", authHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", authHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", authHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", authHandler.UpdateUser).Methods("PUT")

	// Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Hotels
	hotelsAPI := r.PathPrefix("/api/hotels").Subrouter()
	hotelsAPI.Use(authMiddleware.Authenticate)
	hotelsAPI.HandleFunc("", hotelHandler.ListHotels).Methods("GET")
	hotelsAPI.HandleFunc("", hotelHandler.CreateHotel).Methods("POST")
	hotelsAPI.HandleFunc("/{id}", hotelHandler.GetHotel).Methods("GET")
	hotelsAPI.HandleFunc("/{id}", hotelHandler.UpdateHotel).Methods("PUT")
	hotelsAPI.HandleFunc("/{id}", hotelHandler.DeleteHotel).Methods("DELETE")

	// Reservations, their documents, payment history and Nusuk agreement
	reservationsAPI := r.PathPrefix("/api/reservations").Subrouter()
	reservationsAPI.Use(authMiddleware.Authenticate)
	reservationsAPI.HandleFunc("", reservationHandler.ListReservations).Methods("GET")
	reservationsAPI.HandleFunc("", reservationHandler.CreateReservation).Methods("POST")
	reservationsAPI.HandleFunc("/{reservation_no}", reservationHandler.GetReservation).Methods("GET")
	reservationsAPI.HandleFunc("/{reservation_no}", reservationHandler.UpdateReservation).Methods("PUT")
	reservationsAPI.HandleFunc("/{reservation_no}", reservationHandler.DeleteReservation).Methods("DELETE")
	reservationsAPI.HandleFunc("/{reservation_no}/confirmation-letter", reservationHandler.ConfirmationLetter).Methods("GET")
	reservationsAPI.HandleFunc("/{reservation_no}/voucher", reservationHandler.Voucher).Methods("GET")
	reservationsAPI.HandleFunc("/{reservation_no}/payments", paymentHandler.History).Methods("GET")
	reservationsAPI.HandleFunc("/{reservation_no}/payments", paymentHandler.RecordForReservation).Methods("POST")
	reservationsAPI.HandleFunc("/{reservation_no}/nusuk", nusukHandler.GetAgreement).Methods("GET")
	reservationsAPI.HandleFunc("/{reservation_no}/nusuk", nusukHandler.SetAgreement).Methods("PUT")

	// Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.RecordPayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(paymentHandler.DeletePayment)).ServeHTTP).Methods("DELETE")
	paymentsAPI.HandleFunc("/{id}/proof", paymentHandler.UploadProof).Methods("POST")
	paymentsAPI.HandleFunc("/{id}/receipt", paymentHandler.Receipt).Methods("GET")

	// Supplies
	suppliesAPI := r.PathPrefix("/api/supplies").Subrouter()
	suppliesAPI.Use(authMiddleware.Authenticate)
	suppliesAPI.HandleFunc("", supplyHandler.ListSupplies).Methods("GET")
	suppliesAPI.HandleFunc("", supplyHandler.CreateSupply).Methods("POST")
	suppliesAPI.HandleFunc("/{id}", supplyHandler.GetSupply).Methods("GET")
	suppliesAPI.HandleFunc("/{id}", supplyHandler.UpdateSupply).Methods("PUT")
	suppliesAPI.HandleFunc("/{id}", supplyHandler.DeleteSupply).Methods("DELETE")
	suppliesAPI.HandleFunc("/{id}/proof", supplyHandler.UploadProof).Methods("POST")

	// Nusuk agreements overview
	nusukAPI := r.PathPrefix("/api/nusuk").Subrouter()
	nusukAPI.Use(authMiddleware.Authenticate)
	nusukAPI.HandleFunc("", nusukHandler.ListAgreements).Methods("GET")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/summary", reservationHandler.Summary).Methods("GET")

	return r
}
