package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	"github.com/deskhub/booking-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Offices    *service.OfficeService
	Rooms      *service.RoomService
	Workplaces *service.WorkplaceService
	Bookings   *service.BookingService
	Breakages  *service.BreakageService

	// HealthChecks are probed by /readyz, keyed by dependency name.
	HealthChecks map[string]HealthCheck

	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router. All /api routes sit
// behind token authentication; role checks are attached per route.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, Users: services.Users}
	userHandlers := &UserHandlers{Svc: services.Users}
	officeHandlers := &OfficeHandlers{Svc: services.Offices}
	roomHandlers := &RoomHandlers{Svc: services.Rooms}
	workplaceHandlers := &WorkplaceHandlers{Svc: services.Workplaces}
	bookingHandlers := &BookingHandlers{Svc: services.Bookings}
	breakageHandlers := &BreakageHandlers{Svc: services.Breakages}

	registerAuthRoutes(mux, authHandlers)
	registerUserRoutes(mux, userHandlers)
	registerOfficeRoutes(mux, officeHandlers)
	registerRoomRoutes(mux, roomHandlers)
	registerWorkplaceRoutes(mux, workplaceHandlers)
	registerBookingRoutes(mux, bookingHandlers)
	registerBreakageRoutes(mux, breakageHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if len(services.HealthChecks) > 0 {
		mux.Handle("GET /readyz", readinessHandler(services.HealthChecks))
	}

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return Chain(mux,
		Recover(logger),
		Logging(logger),
		Authenticate(services.Auth),
	)
}

// requireUser guards a route for any authenticated principal.
func requireUser(h http.HandlerFunc) http.Handler {
	return RequireRole(domainauth.RoleUser, domainauth.RoleAdmin)(h)
}

// requireAdmin guards a route for admins only.
func requireAdmin(h http.HandlerFunc) http.Handler {
	return RequireRole(domainauth.RoleAdmin)(h)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Login))
	mux.Handle("POST /api/auth/register", http.HandlerFunc(h.Register))
	mux.Handle("GET /api/auth/me", RequireAuth()(http.HandlerFunc(h.Me)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers) {
	mux.Handle("POST /api/users", requireAdmin(h.Create))
	mux.Handle("GET /api/users", requireAdmin(h.List))
	mux.Handle("GET /api/users/{id}", requireAdmin(h.GetByID))
	mux.Handle("PATCH /api/users/{id}", requireAdmin(h.Update))
	mux.Handle("PUT /api/users/{id}/active", requireAdmin(h.SetActive))
	mux.Handle("PUT /api/users/{id}/roles", requireAdmin(h.ReplaceRoles))
	mux.Handle("DELETE /api/users/{id}", requireAdmin(h.Delete))
}

func registerOfficeRoutes(mux *http.ServeMux, h *OfficeHandlers) {
	mux.Handle("POST /api/offices", requireAdmin(h.Create))
	mux.Handle("GET /api/offices", requireUser(h.List))
	mux.Handle("GET /api/offices/{id}", requireUser(h.GetByID))
	mux.Handle("PATCH /api/offices/{id}", requireAdmin(h.Update))
	mux.Handle("DELETE /api/offices/{id}", requireAdmin(h.Delete))
}

func registerRoomRoutes(mux *http.ServeMux, h *RoomHandlers) {
	mux.Handle("POST /api/rooms", requireAdmin(h.Create))
	mux.Handle("GET /api/rooms", requireUser(h.List))
	mux.Handle("GET /api/rooms/{id}", requireUser(h.GetByID))
	mux.Handle("PATCH /api/rooms/{id}", requireAdmin(h.Update))
	mux.Handle("DELETE /api/rooms/{id}", requireAdmin(h.Delete))
}

func registerWorkplaceRoutes(mux *http.ServeMux, h *WorkplaceHandlers) {
	mux.Handle("POST /api/workplaces", requireAdmin(h.Create))
	mux.Handle("GET /api/workplaces", requireUser(h.List))
	mux.Handle("GET /api/workplaces/{id}", requireUser(h.GetByID))
	mux.Handle("PATCH /api/workplaces/{id}", requireAdmin(h.Update))
	mux.Handle("DELETE /api/workplaces/{id}", requireAdmin(h.Delete))
}

func registerBookingRoutes(mux *http.ServeMux, h *BookingHandlers) {
	mux.Handle("POST /api/bookings", requireUser(h.Create))
	mux.Handle("GET /api/bookings", requireUser(h.List))
	mux.Handle("GET /api/bookings/occupancy", requireUser(h.Occupancy))
	mux.Handle("GET /api/bookings/{id}", requireUser(h.GetByID))
	mux.Handle("PATCH /api/bookings/{id}", requireUser(h.UpdateWindow))
	mux.Handle("POST /api/bookings/{id}/cancel", requireUser(h.Cancel))
	mux.Handle("DELETE /api/bookings/{id}", requireAdmin(h.Delete))
}

func registerBreakageRoutes(mux *http.ServeMux, h *BreakageHandlers) {
	mux.Handle("POST /api/breakages", requireUser(h.Create))
	mux.Handle("GET /api/breakages", requireUser(h.List))
	mux.Handle("GET /api/breakages/{id}", requireUser(h.GetByID))
	mux.Handle("PATCH /api/breakages/{id}", requireAdmin(h.Update))
	mux.Handle("DELETE /api/breakages/{id}", requireAdmin(h.Delete))
}
