package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
	"github.com/niksmo/mymarket/pkg/currency"
)

var _ port.OrderLinker = (*WhatsApp)(nil)

// WhatsApp builds the outbound order deep link. Fire-and-forget: the
// link is handed to the client to open, no response is consumed.
type WhatsApp struct {
	number    string
	storeName string
	fmt       currency.Formatter
}

func NewWhatsApp(
	number, storeName string, f currency.Formatter,
) WhatsApp {
	return WhatsApp{number: number, storeName: storeName, fmt: f}
}

func (w WhatsApp) OrderURL(o domain.Order) (string, error) {
	const op = "WhatsApp.OrderURL"

	if w.number == "" {
		return "", fmt.Errorf("%s: destination number is not configured", op)
	}

	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     w.number,
		RawQuery: url.Values{"text": {w.MessageText(o)}}.Encode(),
	}
	return u.String(), nil
}

// MessageText renders the order message: customer block, one entry
// per line item, grand total and the payment instruction.
func (w WhatsApp) MessageText(o domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*ORDER Y'IBICURUZWA - %s*\n\n", w.storeName)
	fmt.Fprintf(&b, "👤 Izina: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "📍 Aho batumiza: %s\n", o.Customer.Address)
	fmt.Fprintf(&b, "📞 Telefone: %s\n\n", o.Customer.Phone)
	b.WriteString("*🛒 IBICURUZWA:*\n")

	for _, it := range o.Lines {
		fmt.Fprintf(&b, "• %s (%s)\n   ➜ Igiciro: %s\n",
			it.Name, lineLabel(it), w.fmt.RWF(it.LineTotal))
	}

	b.WriteString("*===========================*\n")
	fmt.Fprintf(&b, "*💰 TOTAL: %s*\n", w.fmt.RWF(o.Totals.GrandTotal))
	b.WriteString("*===========================*\n")
	fmt.Fprintf(&b, "*Kwishyura M-Pesa:* \n*%s*\n\n", o.PaymentCode())
	b.WriteString("Murakoze kutwifuza! Tuzabageza vuba!")

	return b.String()
}

// lineLabel appends the quantity to full-unit lines, e.g.
// "Carton Yose x 3".
func lineLabel(it domain.CartItem) string {
	if it.Variant == domain.VariantFull {
		return fmt.Sprintf("%s x %d", it.Label, it.Quantity)
	}
	return it.Label
}
