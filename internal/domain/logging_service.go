package domain

import (
	"context"
	"log/slog"
)

type loggingUserService struct {
	logger *slog.Logger
	next   UserService
}

func NewLoggingUserService(logger *slog.Logger, next UserService) UserService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingUserService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingUserService) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.next.ListUsers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list users failed", "err", err.Error())
		return nil, err
	}

	s.logger.DebugContext(ctx, "users listed", "count", len(users))
	return users, nil
}

type loggingOrderService struct {
	logger *slog.Logger
	next   OrderService
}

func NewLoggingOrderService(logger *slog.Logger, next OrderService) OrderService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingOrderService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingOrderService) ListOrders(ctx context.Context, userID string) ([]Order, error) {
	orders, err := s.next.ListOrders(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list orders failed", "user_id", userID, "err", err.Error())
		return nil, err
	}

	s.logger.DebugContext(ctx, "orders listed", "user_id", userID, "count", len(orders))
	return orders, nil
}
