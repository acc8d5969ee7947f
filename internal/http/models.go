package http

import "github.com/Brkic92/simple-auth-api/internal/domain"

// LoginRequest is the payload accepted by both login endpoints.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token when delivered in the body.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a simple envelope for informational messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every violated login rule at once.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ProtectedResponse echoes the authenticated subject.
type ProtectedResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// MeResponse is the caller's decoded identity.
type MeResponse struct {
	Subject  string   `json:"subject"`
	Roles    []string `json:"roles"`
	Policies []string `json:"policies"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrderResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Name: u.Name})
	}
	return out
}

func ordersToResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderResponse{
			ID:       o.ID,
			UserID:   o.UserID,
			Product:  o.Product,
			Quantity: o.Quantity,
		})
	}
	return out
}
