package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Brkic92/simple-auth-api/internal/auth"
	"github.com/Brkic92/simple-auth-api/internal/domain"
)

// HealthChecker reports readiness of a backing dependency. A nil
// checker means the API has no external dependency to probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger *slog.Logger
	Health HealthChecker
	Auth   *auth.Middleware
	Issuer *auth.Issuer
	Users  domain.UserService
	Orders domain.OrderService
}

func NewAPI(logger *slog.Logger, health HealthChecker, mw *auth.Middleware, issuer *auth.Issuer, users domain.UserService, orders domain.OrderService) *API {
	return &API{
		Logger: logger,
		Health: health,
		Auth:   mw,
		Issuer: issuer,
		Users:  users,
		Orders: orders,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)

	mux.HandleFunc("POST /api/v1/auth/jwt", a.handleLoginJWT)
	mux.HandleFunc("POST /api/v1/auth/cookie", a.handleLoginCookie)
	mux.HandleFunc("POST /api/v1/auth/logout", a.handleLogout)

	// Each attachment point declares its own requirement. Roles are
	// OR-combined, policies AND-combined; an empty requirement gates on
	// authentication alone.
	authenticated := a.Auth.Require(auth.Requirement{})
	mux.Handle("GET /api/v1/protected", authenticated(http.HandlerFunc(a.handleProtected)))
	mux.HandleFunc("GET /api/v1/me", a.handleMe)

	adminOnly := a.Auth.Require(auth.Requirement{Roles: []string{"admin"}})
	mux.Handle("GET /api/v1/users", adminOnly(http.HandlerFunc(a.handleListUsers)))

	ordersRead := a.Auth.Require(auth.Requirement{Policies: []string{"orders:read"}})
	mux.Handle("GET /api/v1/users/{id}/orders", ordersRead(http.HandlerFunc(a.handleListOrders)))

	return a.logRequests(mux)
}
