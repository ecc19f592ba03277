package http

import (
	"net/http"

	"go-hostel-pms/internal/delivery/http/handler"
	"go-hostel-pms/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	bedHandler         *handler.BedHandler
	frontDeskHandler   *handler.FrontDeskHandler
	guestHandler       *handler.GuestHandler
	transactionHandler *handler.TransactionHandler
	historyHandler     *handler.HistoryHandler
	externalResHandler *handler.ExternalReservationHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bedHandler *handler.BedHandler,
	frontDeskHandler *handler.FrontDeskHandler,
	guestHandler *handler.GuestHandler,
	transactionHandler *handler.TransactionHandler,
	historyHandler *handler.HistoryHandler,
	externalResHandler *handler.ExternalReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		bedHandler:         bedHandler,
		frontDeskHandler:   frontDeskHandler,
		guestHandler:       guestHandler,
		transactionHandler: transactionHandler,
		historyHandler:     historyHandler,
		externalResHandler: externalResHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Staff management (admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	admin.HandleFunc("/beds", r.bedHandler.CreateBed).Methods(http.MethodPost)
	admin.HandleFunc("/beds/{id}", r.bedHandler.UpdateBed).Methods(http.MethodPut)
	admin.HandleFunc("/beds/{id}/block", r.bedHandler.Block).Methods(http.MethodPost)
	admin.HandleFunc("/beds/{id}/unblock", r.bedHandler.Unblock).Methods(http.MethodPost)

	// Bed routes (any authenticated staff)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.HandleFunc("/beds", r.bedHandler.ListBeds).Methods(http.MethodGet)
	staff.HandleFunc("/beds/housekeeping", r.bedHandler.HousekeepingBoard).Methods(http.MethodGet)
	staff.HandleFunc("/beds/status-board", r.bedHandler.StatusBoard).Methods(http.MethodGet)
	staff.HandleFunc("/beds/bulk-clean", r.bedHandler.BulkMarkClean).Methods(http.MethodPost)
	staff.HandleFunc("/beds/{id}", r.bedHandler.GetBed).Methods(http.MethodGet)
	staff.HandleFunc("/beds/{id}/clean", r.bedHandler.MarkClean).Methods(http.MethodPost)
	staff.HandleFunc("/beds/{id}/dirty", r.bedHandler.MarkDirty).Methods(http.MethodPost)
	staff.HandleFunc("/beds/{id}/maintenance", r.bedHandler.StartMaintenance).Methods(http.MethodPost)
	staff.HandleFunc("/beds/{id}/history", r.historyHandler.ListForBed).Methods(http.MethodGet)
	staff.HandleFunc("/beds/{id}/external-reservations", r.externalResHandler.ListForBed).Methods(http.MethodGet)

	// Front desk routes (admin and reception)
	frontDesk := api.PathPrefix("").Subrouter()
	frontDesk.Use(r.authMiddleware.Authenticate)
	frontDesk.Use(middleware.RequireFrontDesk)
	frontDesk.HandleFunc("/beds/{id}/reserve", r.frontDeskHandler.Reserve).Methods(http.MethodPost)
	frontDesk.HandleFunc("/beds/{id}/cancel-reservation", r.bedHandler.CancelReservation).Methods(http.MethodPost)
	frontDesk.HandleFunc("/checkin", r.frontDeskHandler.CheckIn).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings", r.frontDeskHandler.CreateBooking).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings", r.frontDeskHandler.ListBookings).Methods(http.MethodGet)
	frontDesk.HandleFunc("/bookings/{id}", r.frontDeskHandler.GetBooking).Methods(http.MethodGet)
	frontDesk.HandleFunc("/bookings/{id}/checkin", r.frontDeskHandler.CheckInBooking).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/checkout", r.frontDeskHandler.CheckOut).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/extend", r.frontDeskHandler.ExtendStay).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/no-show", r.frontDeskHandler.MarkNoShow).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/cancel", r.frontDeskHandler.CancelBooking).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/payments", r.frontDeskHandler.RecordPayment).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/charges", r.transactionHandler.RecordCharge).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/refunds", r.transactionHandler.RecordRefund).Methods(http.MethodPost)
	frontDesk.HandleFunc("/bookings/{id}/transactions", r.transactionHandler.ListForBooking).Methods(http.MethodGet)
	frontDesk.HandleFunc("/transfers", r.frontDeskHandler.Transfer).Methods(http.MethodPost)
	frontDesk.HandleFunc("/guests", r.guestHandler.ListGuests).Methods(http.MethodGet)
	frontDesk.HandleFunc("/guests/{id}", r.guestHandler.GetGuest).Methods(http.MethodGet)
	frontDesk.HandleFunc("/guests/{id}", r.guestHandler.UpdateGuest).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
