package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
	"github.com/niksmo/mymarket/pkg/currency"
)

// GET v1/catalog?category=tag&q=term (response 200 OK)

type CatalogHandler struct {
	searcher port.CatalogSearcher
	fmt      currency.Formatter
}

func RegisterCatalog(
	mux *http.ServeMux, searcher port.CatalogSearcher, f currency.Formatter,
) {
	h := CatalogHandler{searcher, f}
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
}

func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalog"
	log := slog.With("op", op)

	filter := domain.CatalogFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	view := CatalogView{
		Tabs:     h.toTabs(h.searcher.Categories(r.Context())),
		Products: h.toCards(h.searcher.SearchProducts(r.Context(), filter)),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (h CatalogHandler) toTabs(tags []string) (tabs []Tab) {
	for _, tag := range tags {
		tabs = append(tabs, Tab{Tag: tag, Label: domain.CategoryName(tag)})
	}
	return tabs
}

func (h CatalogHandler) toCards(ps []domain.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(ps))
	for _, p := range ps {
		card := ProductCard{
			ProductID:     p.ProductID,
			Name:          p.Name,
			Category:      p.Category,
			CategoryLabel: domain.CategoryName(p.Category),
			Image:         p.Image,
		}

		switch kind := p.Kind.(type) {
		case domain.Service:
			card.IsService = true
			card.Variants = []string{
				string(domain.VariantSend),
				string(domain.VariantWithdraw),
				string(domain.VariantSave),
			}
		case domain.QuantityPriced:
			card.FullPrice = kind.FullPrice
			card.HalfPrice = kind.HalfPrice
			card.FullPriceText = h.fmt.RWF(kind.FullPrice)
			card.HalfPriceText = h.fmt.RWF(kind.HalfPrice)
			card.Variants = []string{
				string(domain.VariantHalf),
				string(domain.VariantFull),
			}
		}
		cards = append(cards, card)
	}
	return cards
}
