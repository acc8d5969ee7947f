package domain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type failingUserService struct {
	err error
}

func (s failingUserService) ListUsers(context.Context) ([]User, error) {
	return nil, s.err
}

type failingOrderService struct {
	err error
}

func (s failingOrderService) ListOrders(context.Context, string) ([]Order, error) {
	return nil, s.err
}

func TestLoggingUserServiceLogsAndPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	wantErr := errors.New("directory down")

	svc := NewLoggingUserService(logger, failingUserService{err: wantErr})

	_, err := svc.ListUsers(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
	if !strings.Contains(buf.String(), "list users failed") {
		t.Fatalf("expected error log, got %q", buf.String())
	}
}

func TestLoggingOrderServiceLogsAndPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	wantErr := errors.New("orders down")

	svc := NewLoggingOrderService(logger, failingOrderService{err: wantErr})

	_, err := svc.ListOrders(context.Background(), "user-1")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
	if !strings.Contains(buf.String(), "list orders failed") {
		t.Fatalf("expected error log, got %q", buf.String())
	}
}

func TestLoggingUserServicePassesThroughSuccess(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := NewLoggingUserService(logger, NewMockUserService())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestNewLoggingUserServiceWithNilLoggerReturnsNext(t *testing.T) {
	next := NewMockUserService()
	if got := NewLoggingUserService(nil, next); got != next {
		t.Fatal("expected next service to be returned unchanged")
	}
}
