package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"forklift-rental-backend/internal/service"
)

// Handlers bundles the per-resource handlers behind one router
type Handlers struct {
	Auth         *AuthHandler
	Equipment    *EquipmentHandler
	Rental       *RentalHandler
	User         *UserHandler
	Analytics    *AnalyticsHandler
	Notification *NotificationHandler
}

func NewHandlers(
	authService service.AuthService,
	userService service.UserService,
	fleetService service.FleetService,
	bookingService service.BookingService,
	notificationService service.NotificationService,
	analyticsService service.AnalyticsService,
) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(authService),
		Equipment:    NewEquipmentHandler(fleetService, bookingService),
		Rental:       NewRentalHandler(bookingService),
		User:         NewUserHandler(userService),
		Analytics:    NewAnalyticsHandler(analyticsService),
		Notification: NewNotificationHandler(notificationService),
	}
}

// NewRouter assembles all API routes. Everything under /api except the
// auth endpoints requires a valid bearer token; fleet mutations, rental
// administration, user administration and analytics additionally require
// a privileged role.
func NewRouter(h *Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", h.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Authenticate)

	// Fleet
	api.HandleFunc("/equipment", h.Equipment.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}", h.Equipment.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}/availability", h.Equipment.Availability).Methods(http.MethodGet)

	// Rentals
	api.HandleFunc("/rentals", h.Rental.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals/mine", h.Rental.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", h.Rental.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/status", h.Rental.UpdateStatus).Methods(http.MethodPut)

	// Profile and notifications
	api.HandleFunc("/users/me", h.User.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", h.Notification.MarkAsRead).Methods(http.MethodPut)

	// Staff-only surface
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequirePrivileged)
	admin.HandleFunc("/equipment", h.Equipment.Create).Methods(http.MethodPost)
	admin.HandleFunc("/equipment/{id}", h.Equipment.Update).Methods(http.MethodPut)
	admin.HandleFunc("/equipment/{id}", h.Equipment.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/equipment/{id}/maintenance", h.Equipment.SetMaintenance).Methods(http.MethodPut)
	admin.HandleFunc("/rentals", h.Rental.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/users", h.User.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", h.User.UpdateRole).Methods(http.MethodPut)
	admin.HandleFunc("/analytics/summary", h.Analytics.Summary).Methods(http.MethodGet)

	return r
}
