package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/niksmo/mymarket/internal/adapter/catalog"
	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogDocument = `[
	{"id": "p1", "name": "Amata", "category": "food",
	 "fullprice": 1000, "halfprice": 600, "img": "amata.jpg"},
	{"id": "s1", "name": "Mobile Money", "category": "services",
	 "isService": true, "img": "momo.jpg"}
]`

func assertFixture(t *testing.T, ps []domain.Product) {
	t.Helper()
	require.Len(t, ps, 2)

	assert.Equal(t, "p1", ps[0].ProductID)
	assert.Equal(t, "Amata", ps[0].Name)
	assert.Equal(t, "food", ps[0].Category)
	assert.Equal(t,
		domain.QuantityPriced{FullPrice: 1000, HalfPrice: 600}, ps[0].Kind)

	assert.Equal(t, "s1", ps[1].ProductID)
	assert.True(t, ps[1].IsService())
}

func TestLoader(t *testing.T) {

	t.Run("LocalFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte(catalogDocument), 0o644))

		l := catalog.NewLoader(path, time.Second)
		ps, err := l.FetchProducts(t.Context())
		require.NoError(t, err)
		assertFixture(t, ps)
	})

	t.Run("HTTPSource", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(catalogDocument))
			}))
		defer srv.Close()

		l := catalog.NewLoader(srv.URL, time.Second)
		ps, err := l.FetchProducts(t.Context())
		require.NoError(t, err)
		assertFixture(t, ps)
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		l := catalog.NewLoader(path, time.Second)
		_, err := l.FetchProducts(t.Context())
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		l := catalog.NewLoader(
			filepath.Join(t.TempDir(), "absent.json"), time.Second,
		)
		_, err := l.FetchProducts(t.Context())
		require.Error(t, err)
	})

	t.Run("HTTPErrorStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			}))
		defer srv.Close()

		l := catalog.NewLoader(srv.URL, time.Second)
		_, err := l.FetchProducts(t.Context())
		require.Error(t, err)
	})
}
