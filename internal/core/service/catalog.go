package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
)

var _ port.CatalogLoader = (*CatalogService)(nil)
var _ port.CatalogSearcher = (*CatalogService)(nil)
var _ port.ProductFinder = (*CatalogService)(nil)

// CatalogService holds the product catalog, loaded once at startup
// and read-only afterwards. Until the load resolves every read sees
// an empty catalog.
type CatalogService struct {
	mu       sync.RWMutex
	source   port.CatalogSource
	products []domain.Product
}

func NewCatalogService(source port.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// LoadCatalog fetches the catalog document. Fire-and-forget at
// startup: a failure leaves the catalog empty and is not retried.
func (s *CatalogService) LoadCatalog(ctx context.Context) error {
	const op = "CatalogService.LoadCatalog"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.source.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.products = ps
	s.mu.Unlock()

	log.Info("catalog is loaded", "nProducts", len(ps))
	return nil
}

func (s *CatalogService) SearchProducts(
	_ context.Context, f domain.CatalogFilter,
) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []domain.Product
	for _, p := range s.products {
		if f.Match(p) {
			found = append(found, p)
		}
	}
	return found
}

func (s *CatalogService) FindProduct(
	_ context.Context, productID string,
) (domain.Product, error) {
	const op = "CatalogService.FindProduct"

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
}

// Categories returns the tab list: "all" first, then each distinct
// category in catalog order.
func (s *CatalogService) Categories(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats := []string{domain.CategoryAll}
	seen := map[string]struct{}{domain.CategoryAll: {}}
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	return cats
}
