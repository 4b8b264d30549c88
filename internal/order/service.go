package order

import (
	"context"
	"time"

	"codmart-be/internal/cart"
	"codmart-be/internal/logger"
	"codmart-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Create snapshots the cart and shipping info into a new pending order.
	Create(ctx context.Context, c cart.Cart, shipping ShippingInfo, paymentMethod string) (*Order, error)

	// Get returns the order or ErrOrderNotFound.
	Get(ctx context.Context, id string) (*Order, error)

	// List returns up to 1000 orders in no guaranteed order.
	List(ctx context.Context) ([]*Order, error)

	// UpdateStatus sets a new status, refreshes updated_at and returns the
	// refreshed order. Any transition between known statuses is allowed.
	UpdateStatus(ctx context.Context, id, status string) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, c cart.Cart, shipping ShippingInfo, paymentMethod string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	if shipping.Country == "" {
		shipping.Country = "US"
	}

	now := time.Now().UTC()

	o := &Order{
		ID:            uuid.NewString(),
		Cart:          c,
		Shipping:      shipping,
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		log.Error("failed to persist order",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.IncOrdersCreated()

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Int("item_count", len(o.Cart.Items)),
		zap.Float64("total_cod_price", o.Cart.TotalCODPrice),
	)

	return o, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.String("order_id", id),
	)

	parsed, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	// Existence check first so a missing order reports not-found rather
	// than a write failure.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, parsed, time.Now().UTC()); err != nil {
		log.Error("failed to update order status",
			zap.String("status", status),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("order status updated", zap.String("status", status))

	return s.repo.GetByID(ctx, id)
}
