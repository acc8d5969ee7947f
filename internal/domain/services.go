package domain

import "context"

type UserService interface {
	ListUsers(ctx context.Context) ([]User, error)
}

type OrderService interface {
	ListOrders(ctx context.Context, userID string) ([]Order, error)
}
