package catalog

import (
	"context"
	"fmt"
	"regexp"

	"codmart-be/internal/logger"

	"go.uber.org/zap"
)

// asinPatterns are tried in priority order against a raw URL. The first
// capture wins.
var asinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`/gp/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`asin=([A-Z0-9]{10})`),
	regexp.MustCompile(`/([A-Z0-9]{10})/`),
}

// Service is the catalog lookup contract consumed by the API layer and the
// cart aggregator.
type Service interface {
	// Lookup resolves an explicit ASIN or a product URL to a catalog record.
	// Returns ErrInvalidLookup when neither yields an ASIN and
	// ErrProductNotFound when the resolved ASIN is not in the catalog.
	Lookup(ctx context.Context, asin, url string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ExtractASIN pulls a 10-character alphanumeric product code out of a URL.
func ExtractASIN(url string) (string, bool) {
	for _, pattern := range asinPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func (s *service) Lookup(ctx context.Context, asin, url string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Lookup"),
	)

	if asin == "" && url != "" {
		extracted, ok := ExtractASIN(url)
		if !ok {
			log.Debug("no ASIN pattern matched", zap.String("url", url))
			return nil, ErrInvalidLookup
		}
		asin = extracted
	}

	if asin == "" {
		return nil, ErrInvalidLookup
	}

	product, err := s.repo.GetByASIN(ctx, asin)
	if err != nil {
		log.Error("catalog read failed", zap.String("asin", asin), zap.Error(err))
		return nil, err
	}
	if product == nil {
		log.Debug("asin not in catalog", zap.String("asin", asin))
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, asin)
	}

	return product, nil
}
