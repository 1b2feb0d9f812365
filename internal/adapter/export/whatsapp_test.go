package export_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/niksmo/mymarket/internal/adapter/export"
	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureOrder() domain.Order {
	return domain.Order{
		Reference: "ref-1",
		Date:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Customer: domain.CustomerInfo{
			Name:    "Mukamana Alice",
			Address: "Kigali, Nyarugenge",
			Phone:   "0780000000",
		},
		Lines: []domain.CartItem{
			{
				Name: "Amata", Variant: domain.VariantFull,
				Label: "Carton Yose", Quantity: 2,
				UnitPrice: 1000, LineTotal: 2000,
			},
			{
				Name: "Isabune", Variant: domain.VariantHalf,
				Label: "Igice (1/2)", Quantity: 1,
				UnitPrice: 500, LineTotal: 500,
			},
			{
				Name: "Mobile Money", Service: true,
				Variant: domain.VariantWithdraw, Label: "Kubikuza",
				Quantity: 1,
			},
		},
		Totals: domain.Totals{ItemCount: 4, GrandTotal: 2500},
	}
}

func TestWhatsApp(t *testing.T) {
	f := currency.NewFormatter("en")
	w := export.NewWhatsApp("250780019239", "MYMARKET", f)

	t.Run("OrderURL", func(t *testing.T) {
		link, err := w.OrderURL(fixtureOrder())
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "wa.me", u.Host)
		assert.Equal(t, "/250780019239", u.Path)

		text := u.Query().Get("text")
		assert.Equal(t, w.MessageText(fixtureOrder()), text)
	})

	t.Run("MessageText", func(t *testing.T) {
		msg := w.MessageText(fixtureOrder())

		assert.Contains(t, msg, "*ORDER Y'IBICURUZWA - MYMARKET*")
		assert.Contains(t, msg, "👤 Izina: Mukamana Alice")
		assert.Contains(t, msg, "📍 Aho batumiza: Kigali, Nyarugenge")
		assert.Contains(t, msg, "📞 Telefone: 0780000000")
		assert.Contains(t, msg, "• Amata (Carton Yose x 2)")
		assert.Contains(t, msg, "➜ Igiciro: 2,000 RWF")
		assert.Contains(t, msg, "• Isabune (Igice (1/2))")
		assert.Contains(t, msg, "• Mobile Money (Kubikuza)")
		assert.Contains(t, msg, "*💰 TOTAL: 2,500 RWF*")
		assert.Contains(t, msg, "*182*8*1*2500frw#")
		assert.Contains(t, msg, "Murakoze kutwifuza!")
	})

	t.Run("MissingNumber", func(t *testing.T) {
		unconfigured := export.NewWhatsApp("", "MYMARKET", f)
		_, err := unconfigured.OrderURL(fixtureOrder())
		require.Error(t, err)
	})
}
