package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/mymarket/internal/adapter/export"
	"github.com/niksmo/mymarket/internal/adapter/httphandler"
	"github.com/niksmo/mymarket/internal/adapter/storage"
	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/service"
	"github.com/niksmo/mymarket/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureSource struct {
	products []domain.Product
}

func (s fixtureSource) FetchProducts(
	context.Context,
) ([]domain.Product, error) {
	return s.products, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	products := []domain.Product{
		{
			ProductID: "p1", Name: "Amata", Category: "food",
			Kind: domain.QuantityPriced{FullPrice: 1000, HalfPrice: 600},
		},
		{
			ProductID: "s1", Name: "Mobile Money", Category: "services",
			Kind: domain.Service{},
		},
	}

	catalogSvc := service.NewCatalogService(fixtureSource{products})
	require.NoError(t, catalogSvc.LoadCatalog(t.Context()))

	repo, err := storage.NewCartRepository(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	cartSvc, err := service.NewCartService(t.Context(), catalogSvc, repo)
	require.NoError(t, err)

	f := currency.NewFormatter("en")
	whatsapp := export.NewWhatsApp("250780019239", "MYMARKET", f)
	receipt, err := export.NewReceipt("MyMarket", f)
	require.NoError(t, err)

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, catalogSvc, f)
	httphandler.RegisterCart(mux, cartSvc, f)
	httphandler.RegisterOrder(mux, cartSvc, whatsapp, receipt)

	srv := httptest.NewServer(httphandler.AllowJSON(mux))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(
	t *testing.T, srv *httptest.Server, path, body string,
) *http.Response {
	t.Helper()
	res, err := srv.Client().Post(
		srv.URL+path, "application/json", strings.NewReader(body),
	)
	require.NoError(t, err)
	return res
}

func doRequest(
	t *testing.T, srv *httptest.Server, method, path string,
) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	return res
}

func TestCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res := doRequest(t, srv, http.MethodGet, "/v1/catalog?category=food")
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var view httphandler.CatalogView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&view))

	require.Len(t, view.Products, 1)
	assert.Equal(t, "Amata", view.Products[0].Name)
	assert.Equal(t, "1,000 RWF", view.Products[0].FullPriceText)
	assert.Equal(t, []string{"half", "full"}, view.Products[0].Variants)

	require.Len(t, view.Tabs, 3)
	assert.Equal(t, httphandler.Tab{Tag: "all", Label: "Byose"}, view.Tabs[0])
}

func TestCartEndpoints(t *testing.T) {

	t.Run("AddItem", func(t *testing.T) {
		srv := newTestServer(t)

		res := postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"full","quantity":2}`)
		defer res.Body.Close()
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var line httphandler.CartLine
		require.NoError(t, json.NewDecoder(res.Body).Decode(&line))
		assert.Equal(t, "Carton Yose x 2", line.VariantLabel)
		assert.Equal(t, int64(2000), line.LineTotal)
	})

	t.Run("AddItemWithoutVariant", func(t *testing.T) {
		srv := newTestServer(t)

		res := postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":""}`)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("AddItemUnknownProduct", func(t *testing.T) {
		srv := newTestServer(t)

		res := postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"missing","variant":"full"}`)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("CartView", func(t *testing.T) {
		srv := newTestServer(t)

		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"full","quantity":2}`).Body.Close()
		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"s1","variant":"withdraw"}`).Body.Close()

		res := doRequest(t, srv, http.MethodGet, "/v1/cart")
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var view httphandler.CartView
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))

		require.Len(t, view.Lines, 2)
		assert.Equal(t, 3, view.ItemCount)
		assert.Equal(t, int64(2000), view.GrandTotal)
		assert.Equal(t, "2,000 RWF", view.GrandTotalText)
		assert.Equal(t, "*182*8*1*2000frw#", view.PaymentCode)
		assert.True(t, view.ShowWithdrawCode)
		assert.False(t, view.Empty)
	})

	t.Run("RemoveItemOutOfRange", func(t *testing.T) {
		srv := newTestServer(t)

		res := doRequest(t, srv, http.MethodDelete, "/v1/cart/items/7")
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("RemoveItem", func(t *testing.T) {
		srv := newTestServer(t)

		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"full"}`).Body.Close()

		res := doRequest(t, srv, http.MethodDelete, "/v1/cart/items/0")
		res.Body.Close()
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})

	t.Run("ClearNeedsConfirmation", func(t *testing.T) {
		srv := newTestServer(t)

		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"half"}`).Body.Close()

		res := doRequest(t, srv, http.MethodDelete, "/v1/cart")
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		res = doRequest(t, srv, http.MethodDelete, "/v1/cart?confirm=true")
		res.Body.Close()
		assert.Equal(t, http.StatusNoContent, res.StatusCode)

		res = doRequest(t, srv, http.MethodGet, "/v1/cart")
		defer res.Body.Close()
		var view httphandler.CartView
		require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
		assert.True(t, view.Empty)
		assert.Zero(t, view.ItemCount)
	})
}

func TestOrderEndpoints(t *testing.T) {

	const customer = `{"name":"Mukamana Alice","address":"Kigali","phone":"0780000000"}`

	t.Run("WhatsAppLink", func(t *testing.T) {
		srv := newTestServer(t)

		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"full","quantity":2}`).Body.Close()

		res := postJSON(t, srv, "/v1/order/whatsapp", customer)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var link httphandler.OrderLink
		require.NoError(t, json.NewDecoder(res.Body).Decode(&link))
		assert.Contains(t, link.URL, "https://wa.me/250780019239?text=")
	})

	t.Run("MissingPhone", func(t *testing.T) {
		srv := newTestServer(t)

		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"half"}`).Body.Close()

		res := postJSON(t, srv, "/v1/order/whatsapp",
			`{"name":"Mukamana Alice","address":"Kigali","phone":" "}`)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		srv := newTestServer(t)

		res := postJSON(t, srv, "/v1/order/whatsapp", customer)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("ReceiptDownload", func(t *testing.T) {
		srv := newTestServer(t)

		postJSON(t, srv, "/v1/cart/items",
			`{"product_id":"p1","variant":"full"}`).Body.Close()

		res := postJSON(t, srv, "/v1/order/receipt", customer)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t,
			"text/html; charset=utf-8", res.Header.Get("Content-Type"))
		assert.Contains(t,
			res.Header.Get("Content-Disposition"), "MyMarket_Order_")
	})

	t.Run("NonJSONBodyRejected", func(t *testing.T) {
		srv := newTestServer(t)

		res, err := srv.Client().Post(
			srv.URL+"/v1/cart/items", "text/plain",
			strings.NewReader("product_id=p1"),
		)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
	})
}
