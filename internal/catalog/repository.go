package catalog

import "context"

// Repository resolves ASINs to product records. The static implementation
// below stands in for an external product-data source; callers only depend
// on this interface so a real upstream can be swapped in later.
type Repository interface {
	GetByASIN(ctx context.Context, asin string) (*Product, error)
}

type staticRepository struct {
	products map[string]Product
}

func NewStaticRepository() Repository {
	return &staticRepository{products: seedProducts()}
}

// GetByASIN returns (nil, nil) when the ASIN is not in the table.
func (r *staticRepository) GetByASIN(_ context.Context, asin string) (*Product, error) {
	p, ok := r.products[asin]
	if !ok {
		return nil, nil
	}

	// Copy so callers can never mutate the table.
	out := p
	out.Images = append([]string(nil), p.Images...)
	return &out, nil
}
