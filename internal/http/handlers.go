package http

import (
	"errors"
	"net/http"

	"github.com/Brkic92/simple-auth-api/internal/auth"
	"github.com/Brkic92/simple-auth-api/internal/domain"
)

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Health != nil {
		if err := a.Health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "db ping failed", "err", err)
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (a *API) handleLoginJWT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loginReq, err := decode[LoginRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling login from request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	token, _, err := a.Issuer.Issue(ctx, loginReq.Username, loginReq.Password)
	if err != nil {
		a.respondIssueError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, LoginResponse{Token: token})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) handleLoginCookie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loginReq, err := decode[LoginRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling login from request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	token, _, err := a.Issuer.Issue(ctx, loginReq.Username, loginReq.Password)
	if err != nil {
		a.respondIssueError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(a.Issuer.TTL().Seconds()),
	})

	err = encode(w, r, http.StatusOK, MessageResponse{Message: "login successful"})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// handleLogout clears the cookie on the client. Tokens already captured
// stay valid until natural expiry; there is no server-side denylist.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})

	err := encode(w, r, http.StatusOK, MessageResponse{Message: "logout successful"})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respondIssueError(w http.ResponseWriter, r *http.Request, issueErr error) {
	ctx := r.Context()

	var verr *auth.ValidationError
	if errors.As(issueErr, &verr) {
		err := encode(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: verr.Errors})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if errors.Is(issueErr, auth.ErrInvalidCredentials) {
		err := encode(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	a.Logger.ErrorContext(ctx, "issuing token", "err", issueErr.Error())
	err := encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) handleProtected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		// Require attaches claims before forwarding; reaching here
		// means the route was wired without the middleware.
		a.Logger.ErrorContext(ctx, "no claims on protected route")
		err := encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err := encode(w, r, http.StatusOK, ProtectedResponse{
		Message: "You have access to protected content!",
		User:    claims.Subject,
	})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// handleMe uses the extraction-only construct: it needs the caller's
// identity but declares no role or policy requirement.
func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := a.Auth.Authenticate(r)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, auth.ErrMissingCredentials) {
			msg = "missing credentials"
		}
		err = encode(w, r, http.StatusUnauthorized, ErrorResponse{Error: msg})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, MeResponse{
		Subject:  claims.Subject,
		Roles:    claims.Roles,
		Policies: claims.Policies,
	})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := a.Users.ListUsers(ctx)
	if err != nil {
		a.Logger.ErrorContext(ctx, "listing users", "err", err.Error())
		err = encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, usersToResponse(users))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("id")

	orders, err := a.Orders.ListOrders(ctx, userID)
	if err != nil {
		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: "internal server error"}
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
			resp = ErrorResponse{Error: "bad request"}
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
			resp = ErrorResponse{Error: "user not found"}
		default:
			a.Logger.ErrorContext(ctx, "listing orders", "user_id", userID, "err", err.Error())
		}
		err = encode(w, r, status, resp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, ordersToResponse(orders))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}
