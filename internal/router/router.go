package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bloom-cafe/api/internal/cart"
	"github.com/bloom-cafe/api/internal/config"
	"github.com/bloom-cafe/api/internal/handler"
	mw "github.com/bloom-cafe/api/internal/middleware"
	"github.com/bloom-cafe/api/internal/store"
	"github.com/bloom-cafe/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
// Customer routes run inside the session middleware; staff routes do not.
func New(cfg *config.Config, sessions *cart.Manager, submitter handler.OrderSubmitter, dash handler.DashboardView, st store.Store, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// The legacy controller URL: points clients at the staff surface.
	r.Get("/controller", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"view":"staff","api":"/staff","ws":"/ws/staff"}`))
	})

	// Menu (public, no session needed)
	menuHandler := handler.NewMenuHandler()
	r.Route("/menu", menuHandler.RegisterRoutes)

	// Public forms
	reservationHandler := handler.NewReservationHandler(st)
	r.Route("/reservations", reservationHandler.RegisterRoutes)

	messageHandler := handler.NewMessageHandler(st)
	r.Route("/messages", messageHandler.RegisterRoutes)

	// Customer routes (session-scoped)
	r.Group(func(r chi.Router) {
		r.Use(mw.Session(sessions))

		cartHandler := handler.NewCartHandler()
		r.Route("/cart", cartHandler.RegisterRoutes)

		orderHandler := handler.NewOrderHandler(submitter)
		r.Route("/orders", orderHandler.RegisterRoutes)
	})

	// Staff routes
	staffHandler := handler.NewStaffHandler(dash)
	r.Route("/staff", staffHandler.RegisterRoutes)

	// WebSocket route for staff refresh hints
	r.Get("/ws/staff", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	return r
}
