package domain

// A Quote is the priced form of one add-to-cart request.
type Quote struct {
	Variant   Variant
	Label     string
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// Price maps a (product, variant, quantity) tuple to a quote.
// Pure: no side effects, deterministic for identical inputs.
//
// Services always price to zero with quantity 1. The half variant
// forces quantity 1. Quantities below 1 on the full variant clamp
// to 1. The variant must already be validated with [ParseVariant].
func Price(p Product, v Variant, quantity int) (Quote, error) {
	if quantity < 1 {
		quantity = 1
	}

	switch kind := p.Kind.(type) {
	case Service:
		if !v.IsServiceTag() {
			return Quote{}, ErrUnknownVariant
		}
		return Quote{
			Variant:  v,
			Label:    v.Label(),
			Quantity: 1,
		}, nil
	case QuantityPriced:
		switch v {
		case VariantHalf:
			return Quote{
				Variant:   v,
				Label:     v.Label(),
				Quantity:  1,
				UnitPrice: kind.HalfPrice,
				LineTotal: kind.HalfPrice,
			}, nil
		case VariantFull:
			return Quote{
				Variant:   v,
				Label:     v.Label(),
				Quantity:  quantity,
				UnitPrice: kind.FullPrice,
				LineTotal: kind.FullPrice * int64(quantity),
			}, nil
		}
	}
	return Quote{}, ErrUnknownVariant
}
