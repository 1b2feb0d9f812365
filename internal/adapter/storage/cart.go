package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
	"github.com/niksmo/mymarket/pkg/schema"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ port.CartRepository = (*CartRepository)(nil)

// cartKey is the single durable entry holding the serialized cart
// sequence. Another process writing the same store wins last, which
// is the accepted contract.
const cartKey = "mymarket_cart"

// CartRepository persists the cart sequence in a local key-value
// store under one fixed key.
type CartRepository struct {
	db    *leveldb.DB
	serde schema.Serde
}

func NewCartRepository(path string) (CartRepository, error) {
	const op = "NewCartRepository"
	log := slog.With("op", op)

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return CartRepository{}, fmt.Errorf("%s: %w", op, err)
	}

	serde, err := schema.NewSerdeCartV1()
	if err != nil {
		return CartRepository{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("cart store is opened", "path", path)
	return CartRepository{db: db, serde: serde}, nil
}

// LoadCart hydrates the cart sequence. A missing entry is an empty
// cart; a corrupt entry resets to empty and is only logged.
func (r CartRepository) LoadCart(
	ctx context.Context,
) ([]domain.CartItem, error) {
	const op = "CartRepository.LoadCart"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := r.db.Get([]byte(cartKey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var vs []schema.CartItemV1
	if err := r.serde.Decode(data, &vs); err != nil {
		log.Warn("stored cart is corrupt, resetting to empty", "err", err)
		return nil, nil
	}

	return r.toDomain(vs), nil
}

func (r CartRepository) StoreCart(
	ctx context.Context, items []domain.CartItem,
) error {
	const op = "CartRepository.StoreCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := r.serde.Encode(r.toRecords(items))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.Put([]byte(cartKey), data, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartRepository) EraseCart(ctx context.Context) error {
	const op = "CartRepository.EraseCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.Delete([]byte(cartKey), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartRepository) Close() {
	const op = "CartRepository.Close"
	log := slog.With("op", op)

	log.Info("closing cart store...")
	if err := r.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("cart store is closed")
}

func (r CartRepository) toRecords(
	items []domain.CartItem,
) []schema.CartItemV1 {
	vs := make([]schema.CartItemV1, 0, len(items))
	for _, it := range items {
		vs = append(vs, schema.CartItemV1{
			ProductID: it.ProductID,
			Name:      it.Name,
			Variant:   string(it.Variant),
			Label:     it.Label,
			Service:   it.Service,
			Quantity:  int64(it.Quantity),
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return vs
}

func (r CartRepository) toDomain(
	vs []schema.CartItemV1,
) (items []domain.CartItem) {
	for _, v := range vs {
		items = append(items, domain.CartItem{
			ProductID: v.ProductID,
			Name:      v.Name,
			Variant:   domain.Variant(v.Variant),
			Label:     v.Label,
			Service:   v.Service,
			Quantity:  int(v.Quantity),
			UnitPrice: v.UnitPrice,
			LineTotal: v.LineTotal,
		})
	}
	return items
}
