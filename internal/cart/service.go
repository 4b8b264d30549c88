package cart

import (
	"context"
	"fmt"

	"codmart-be/internal/catalog"
	"codmart-be/internal/logger"
	"codmart-be/internal/pricing"

	"go.uber.org/zap"
)

// Policy controls how the aggregator treats cart lines it cannot resolve.
type Policy int

const (
	// PolicyLenient drops unknown ASINs from the cart without failing the
	// request and passes quantities through unvalidated. This matches the
	// historical behavior clients depend on.
	PolicyLenient Policy = iota

	// PolicyStrict fails the whole cart on an unknown ASIN or a
	// non-positive quantity.
	PolicyStrict
)

// Service aggregates priced line items into cart totals.
type Service interface {
	BuildCart(ctx context.Context, items []ItemInput) (*Cart, error)
}

type service struct {
	catalogRepo catalog.Repository
	policy      Policy
}

func NewService(catalogRepo catalog.Repository, policy Policy) Service {
	return &service{catalogRepo: catalogRepo, policy: policy}
}

func (s *service) BuildCart(ctx context.Context, items []ItemInput) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "BuildCart"),
		zap.Int("item_count", len(items)),
	)

	built := &Cart{Items: make([]LineItem, 0, len(items))}

	for i, item := range items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}

		if s.policy == PolicyStrict && quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidQuantity, i)
		}

		product, err := s.catalogRepo.GetByASIN(ctx, item.ASIN)
		if err != nil {
			log.Error("catalog read failed",
				zap.Int("index", i),
				zap.String("asin", item.ASIN),
				zap.Error(err),
			)
			return nil, err
		}

		if product == nil {
			if s.policy == PolicyStrict {
				return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ASIN)
			}
			log.Debug("skipping unknown asin",
				zap.Int("index", i),
				zap.String("asin", item.ASIN),
			)
			continue
		}

		priced := pricing.Price(*product)

		built.Items = append(built.Items, LineItem{
			ASIN:     item.ASIN,
			Quantity: quantity,
			Product:  priced,
		})

		qty := float64(quantity)
		built.Subtotal += priced.BasePrice * qty
		built.TotalCommission += priced.Commission * qty
		built.TotalHandling += priced.HandlingFee * qty
	}

	built.TotalCODPrice = built.Subtotal + built.TotalCommission + built.TotalHandling

	log.Debug("cart built",
		zap.Int("surviving_items", len(built.Items)),
		zap.Float64("total_cod_price", built.TotalCODPrice),
	)

	return built, nil
}
