package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the API surface. Register and login are open;
// everything under the protected subrouter requires a bearer token, and the
// staff subrouter additionally requires the staff flag.
func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	gameHandler *GameHandler,
	rentalHandler *RentalHandler,
	reviewHandler *ReviewHandler,
	paymentHandler *PaymentHandler,
	authMiddleware *AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(PanicRecovery)
	r.Use(MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Token-protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware.Authenticate)

	protected.HandleFunc("/games", gameHandler.List).Methods("GET")
	protected.HandleFunc("/games", gameHandler.Create).Methods("POST")
	protected.HandleFunc("/games/by-letter/{letter}", gameHandler.ByLetter).Methods("GET")
	protected.HandleFunc("/games/{id:[0-9]+}", gameHandler.Get).Methods("GET")
	protected.HandleFunc("/games/{id:[0-9]+}", gameHandler.Update).Methods("PUT", "PATCH")
	protected.HandleFunc("/games/{id:[0-9]+}", gameHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	protected.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods("GET")
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods("PUT", "PATCH")
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/users/{id:[0-9]+}/rentals", rentalHandler.ListForUser).Methods("GET")

	protected.HandleFunc("/reviews", reviewHandler.List).Methods("GET")
	protected.HandleFunc("/reviews", reviewHandler.Create).Methods("POST")
	protected.HandleFunc("/reviews/{id:[0-9]+}", reviewHandler.Get).Methods("GET")
	protected.HandleFunc("/reviews/{id:[0-9]+}", reviewHandler.Update).Methods("PUT", "PATCH")
	protected.HandleFunc("/reviews/{id:[0-9]+}", reviewHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/payments", paymentHandler.List).Methods("GET")
	protected.HandleFunc("/payments", paymentHandler.Create).Methods("POST")
	protected.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.Get).Methods("GET")
	protected.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.Update).Methods("PUT", "PATCH")
	protected.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.Delete).Methods("DELETE")

	// Staff-only routes
	staff := api.NewRoute().Subrouter()
	staff.Use(authMiddleware.Authenticate, authMiddleware.RequireStaff)

	staff.HandleFunc("/users", userHandler.List).Methods("GET")
	staff.HandleFunc("/users", userHandler.Create).Methods("POST")
	staff.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods("GET")
	staff.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods("PUT", "PATCH")
	staff.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods("DELETE")
	staff.HandleFunc("/rentals/monthly-summary", rentalHandler.MonthlySummary).Methods("GET")

	return r
}
