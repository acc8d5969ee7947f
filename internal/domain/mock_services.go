package domain

import (
	"context"

	"github.com/google/uuid"
)

// mockUserService serves a fixed user list. It stands in for a real
// directory until one is wired up.
type mockUserService struct {
	users []User
}

func NewMockUserService() UserService {
	return &mockUserService{
		users: []User{
			{ID: uuid.NewString(), Name: "Alice"},
			{ID: uuid.NewString(), Name: "Bob"},
		},
	}
}

func (s *mockUserService) ListUsers(ctx context.Context) ([]User, error) {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// mockOrderService generates demo orders for any user.
type mockOrderService struct{}

func NewMockOrderService() OrderService {
	return &mockOrderService{}
}

func (s *mockOrderService) ListOrders(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	return []Order{
		{ID: uuid.NewString(), UserID: userID, Product: "Laptop", Quantity: 1},
		{ID: uuid.NewString(), UserID: userID, Product: "Mouse", Quantity: 2},
	}, nil
}
