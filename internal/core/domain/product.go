package domain

import "strings"

type Product struct {
	ProductID string
	Name      string
	Category  string
	Image     string
	Kind      ProductKind
}

// A ProductKind selects the pricing schema of a product.
//
// Exactly two kinds exist: [QuantityPriced] and [Service].
type ProductKind interface {
	productKind()
}

type QuantityPriced struct {
	FullPrice int64
	HalfPrice int64
}

func (QuantityPriced) productKind() {}

type Service struct{}

func (Service) productKind() {}

func (p Product) IsService() bool {
	_, ok := p.Kind.(Service)
	return ok
}

const CategoryAll = "all"

var categoryNames = map[string]string{
	CategoryAll:   "Byose",
	"food":        "Ibiribwa",
	"cleaning":    "Isuku & Isukura",
	"agriculture": "Ubuhinzi & Ubworozi",
	"services":    "Serivisi",
	"cosmetics":   "Ibisobanuro & Imitobe",
	"home":        "Ibikoresho byo murugo",
	"drinks":      "Ibinyobwa",
	"babycare":    "Iby’abana",
	"electronics": "Electronics",
}

// CategoryName returns the display name of a category tag.
// Unknown tags display as themselves.
func CategoryName(tag string) string {
	if name, ok := categoryNames[tag]; ok {
		return name
	}
	return tag
}

type CatalogFilter struct {
	Category string
	Search   string
}

// Match reports whether the product passes the category and
// free-text constraints of the filter.
func (f CatalogFilter) Match(p Product) bool {
	categoryMatch := f.Category == "" ||
		f.Category == CategoryAll ||
		f.Category == p.Category

	term := strings.ToLower(strings.TrimSpace(f.Search))
	searchMatch := term == "" ||
		strings.Contains(strings.ToLower(p.Name), term)

	return categoryMatch && searchMatch
}
