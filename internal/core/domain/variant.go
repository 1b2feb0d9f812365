package domain

// A Variant is the purchasing mode of a product: half or full unit
// for quantity-priced products, one of the service sub-types for
// service products.
type Variant string

const (
	VariantHalf     Variant = "half"
	VariantFull     Variant = "full"
	VariantSend     Variant = "send"
	VariantWithdraw Variant = "withdraw"
	VariantSave     Variant = "save"
)

var variantLabels = map[Variant]string{
	VariantHalf:     "Igice (1/2)",
	VariantFull:     "Carton Yose",
	VariantSend:     "Kohereza",
	VariantWithdraw: "Kubikuza",
	VariantSave:     "Kubitsa",
}

func (v Variant) Label() string {
	return variantLabels[v]
}

func (v Variant) IsServiceTag() bool {
	switch v {
	case VariantSend, VariantWithdraw, VariantSave:
		return true
	}
	return false
}

// ParseVariant validates a raw variant tag against the product kind.
// An empty tag is [ErrNoVariant]; a tag the kind does not recognize
// is [ErrUnknownVariant].
func ParseVariant(p Product, tag string) (Variant, error) {
	if tag == "" {
		return "", ErrNoVariant
	}

	v := Variant(tag)
	switch p.Kind.(type) {
	case Service:
		if v.IsServiceTag() {
			return v, nil
		}
	case QuantityPriced:
		if v == VariantHalf || v == VariantFull {
			return v, nil
		}
	}
	return "", ErrUnknownVariant
}
