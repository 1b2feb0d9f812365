package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
)

var _ port.CatalogSource = (*Loader)(nil)

// A record is one product entry of the static catalog document.
type record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsService bool   `json:"isService"`
	FullPrice int64  `json:"fullprice"`
	HalfPrice int64  `json:"halfprice"`
	Img       string `json:"img"`
}

// Loader reads the catalog document from a local file or an HTTP URL,
// once per session.
type Loader struct {
	source string
	client *http.Client
}

func NewLoader(source string, fetchTimeout time.Duration) Loader {
	return Loader{
		source: source,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

func (l Loader) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "Loader.FetchProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := l.readDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rs []record
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("%s: malformed catalog: %w", op, err)
	}

	return l.toDomain(rs), nil
}

func (l Loader) readDocument(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") ||
		strings.HasPrefix(l.source, "https://") {
		return l.fetchDocument(ctx)
	}
	return os.ReadFile(l.source)
}

func (l Loader) fetchDocument(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, l.source, nil,
	)
	if err != nil {
		return nil, err
	}

	res, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", res.Status)
	}

	return io.ReadAll(res.Body)
}

func (l Loader) toDomain(rs []record) (ps []domain.Product) {
	for _, r := range rs {
		p := domain.Product{
			ProductID: r.ID,
			Name:      r.Name,
			Category:  r.Category,
			Image:     r.Img,
		}
		if r.IsService {
			p.Kind = domain.Service{}
		} else {
			p.Kind = domain.QuantityPriced{
				FullPrice: r.FullPrice,
				HalfPrice: r.HalfPrice,
			}
		}
		ps = append(ps, p)
	}
	return ps
}
