package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertrack/internal/domain"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, address, description string, price int64) (*domain.Order, error)
	Take(ctx context.Context, id int64, assignee string) error
	Complete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status string) error
	MarkPaid(ctx context.Context, id int64) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) CreateOrder(ctx context.Context, address, description string, price int64) (*domain.Order, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidOrder)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidOrder)
	}

	order, err := s.repo.Create(ctx, address, description, price)
	if err != nil {
		zap.L().Error("can't create order: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("order created", zap.Int64("id", order.ID))
	return order, nil
}

// TakeOrder assigns the order and moves it to in_progress. An order that is
// already taken is silently reassigned.
func (s *Service) TakeOrder(ctx context.Context, id int64, assignee string) error {
	if strings.TrimSpace(assignee) == "" {
		return fmt.Errorf("%w: assignee is required", domain.ErrInvalidOrder)
	}
	if err := s.repo.Take(ctx, id, assignee); err != nil {
		logMutationError("take", id, err)
		return err
	}
	zap.L().Info("order taken", zap.Int64("id", id), zap.String("assignee", assignee))
	return nil
}

func (s *Service) CompleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Complete(ctx, id); err != nil {
		logMutationError("complete", id, err)
		return err
	}
	zap.L().Info("order completed", zap.Int64("id", id))
	return nil
}

// SetStatus stores status verbatim. No status value is reserved.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) error {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		logMutationError("set status", id, err)
		return err
	}
	zap.L().Info("order status changed", zap.Int64("id", id), zap.String("status", status))
	return nil
}

func (s *Service) MarkPaid(ctx context.Context, id int64) error {
	if err := s.repo.MarkPaid(ctx, id); err != nil {
		logMutationError("mark paid", id, err)
		return err
	}
	zap.L().Info("order marked paid", zap.Int64("id", id))
	return nil
}

func logMutationError(op string, id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		zap.L().Info("order not found", zap.String("op", op), zap.Int64("id", id))
		return
	}
	zap.L().Error("failed to update order", zap.String("op", op), zap.Int64("id", id), zap.Error(err))
}
