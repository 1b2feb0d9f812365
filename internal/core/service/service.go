package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
)

var _ port.CartItemAdder = (*CartService)(nil)
var _ port.CartItemRemover = (*CartService)(nil)
var _ port.CartClearer = (*CartService)(nil)
var _ port.CartViewer = (*CartService)(nil)
var _ port.OrderComposer = (*CartService)(nil)

// CartService is the single source of truth for the cart sequence.
// Every mutation persists the full sequence to the repository before
// returning.
type CartService struct {
	mu     sync.Mutex
	finder port.ProductFinder
	repo   port.CartRepository
	items  []domain.CartItem
	nowFn  func() time.Time
	refFn  func() string
}

func NewCartService(
	ctx context.Context,
	finder port.ProductFinder,
	repo port.CartRepository,
) (*CartService, error) {
	const op = "NewCartService"

	items, err := repo.LoadCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &CartService{
		finder: finder,
		repo:   repo,
		items:  items,
		nowFn:  time.Now,
		refFn:  uuid.NewString,
	}, nil
}

// AddCartItem prices the request and merges it into the cart. Lines
// sharing (productID, variant) merge by summing quantity; the line
// total is recomputed from the unit price on every merge.
func (s *CartService) AddCartItem(
	ctx context.Context, productID, variantTag string, quantity int,
) (domain.CartItem, error) {
	const op = "CartService.AddCartItem"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.finder.FindProduct(ctx, productID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	v, err := domain.ParseVariant(p, variantTag)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	q, err := domain.Price(p, v, quantity)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.mergeLocked(p, q)

	if err := s.repo.StoreCart(ctx, s.items); err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item added",
		"productID", item.ProductID,
		"variant", item.Variant,
		"quantity", item.Quantity,
	)
	return item, nil
}

func (s *CartService) mergeLocked(
	p domain.Product, q domain.Quote,
) domain.CartItem {
	for i := range s.items {
		if s.items[i].SameLine(p.ProductID, q.Variant) {
			s.items[i].Quantity += q.Quantity
			s.items[i].LineTotal =
				s.items[i].UnitPrice * int64(s.items[i].Quantity)
			return s.items[i]
		}
	}

	item := domain.CartItem{
		ProductID: p.ProductID,
		Name:      p.Name,
		Variant:   q.Variant,
		Label:     q.Label,
		Service:   p.IsService(),
		Quantity:  q.Quantity,
		UnitPrice: q.UnitPrice,
		LineTotal: q.LineTotal,
	}
	s.items = append(s.items, item)
	return item
}

// RemoveCartItem removes the line at the given insertion-order
// position. An out-of-range index is a reported error, never a
// silent no-op.
func (s *CartService) RemoveCartItem(ctx context.Context, index int) error {
	const op = "CartService.RemoveCartItem"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%s: %w", op, domain.ErrIndexOutOfRange)
	}

	s.items = slices.Delete(s.items, index, index+1)

	if err := s.repo.StoreCart(ctx, s.items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearCart empties the cart and erases the durable entry. The
// user-facing confirmation step is owned by the presentation layer.
func (s *CartService) ClearCart(ctx context.Context) error {
	const op = "CartService.ClearCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	if err := s.repo.EraseCart(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CartService) CartItems(_ context.Context) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *CartService) CartTotals(_ context.Context) domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotals(s.items)
}

func (s *CartService) HasService(
	_ context.Context, v domain.Variant,
) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.HasService(s.items, v)
}

// ComposeOrder snapshots the cart for export. Incomplete customer
// info or an empty cart aborts with a validation error and mutates
// nothing.
func (s *CartService) ComposeOrder(
	ctx context.Context, customer domain.CustomerInfo,
) (domain.Order, error) {
	const op = "CartService.ComposeOrder"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := customer.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	return domain.Order{
		Reference: s.refFn(),
		Date:      s.nowFn(),
		Customer:  customer.Trimmed(),
		Lines:     slices.Clone(s.items),
		Totals:    domain.CartTotals(s.items),
	}, nil
}
