package port

import (
	"context"

	"github.com/niksmo/mymarket/internal/core/domain"
)

type CatalogLoader interface {
	LoadCatalog(context.Context) error
}

type CatalogSearcher interface {
	SearchProducts(context.Context, domain.CatalogFilter) []domain.Product
	Categories(context.Context) []string
}

type ProductFinder interface {
	FindProduct(ctx context.Context, productID string) (domain.Product, error)
}

type CartItemAdder interface {
	AddCartItem(
		ctx context.Context, productID, variantTag string, quantity int,
	) (domain.CartItem, error)
}

type CartItemRemover interface {
	RemoveCartItem(ctx context.Context, index int) error
}

type CartClearer interface {
	ClearCart(context.Context) error
}

type CartViewer interface {
	CartItems(context.Context) []domain.CartItem
	CartTotals(context.Context) domain.Totals
	HasService(ctx context.Context, v domain.Variant) bool
}

type OrderComposer interface {
	ComposeOrder(context.Context, domain.CustomerInfo) (domain.Order, error)
}

type CatalogSource interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

type CartRepository interface {
	LoadCart(context.Context) ([]domain.CartItem, error)
	StoreCart(context.Context, []domain.CartItem) error
	EraseCart(context.Context) error
}

type OrderLinker interface {
	OrderURL(domain.Order) (string, error)
}

type ReceiptRenderer interface {
	RenderReceipt(domain.Order) (domain.Receipt, error)
}
