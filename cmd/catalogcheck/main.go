// Command catalogcheck lints a catalog document before it is
// published: duplicate product ids, negative prices and prices on
// service products are reported.
package main

import (
	"fmt"
	"time"

	"github.com/niksmo/mymarket/config"
	"github.com/niksmo/mymarket/internal/adapter/catalog"
	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	printStart(cfg)
	defer printComplete(time.Now())

	loader := catalog.NewLoader(cfg.Catalog.Source, cfg.Catalog.FetchTimeout)
	ps, err := loader.FetchProducts(sigCtx)
	if err != nil {
		printFail(err)
		return
	}

	issues := checkProducts(ps)
	for _, issue := range issues {
		fmt.Println(issue)
	}
	fmt.Printf("\n%d products, %d issues\n", len(ps), len(issues))
}

func checkProducts(ps []domain.Product) (issues []string) {
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if p.ProductID == "" {
			issues = append(issues,
				fmt.Sprintf("product %q: empty id", p.Name))
		}
		if _, ok := seen[p.ProductID]; ok {
			issues = append(issues,
				fmt.Sprintf("product %q: duplicate id %q", p.Name, p.ProductID))
		}
		seen[p.ProductID] = struct{}{}

		if p.Name == "" {
			issues = append(issues,
				fmt.Sprintf("product id %q: empty name", p.ProductID))
		}

		if kind, ok := p.Kind.(domain.QuantityPriced); ok {
			if kind.FullPrice < 0 || kind.HalfPrice < 0 {
				issues = append(issues,
					fmt.Sprintf("product %q: negative price", p.Name))
			}
			if kind.FullPrice == 0 && kind.HalfPrice == 0 {
				issues = append(issues,
					fmt.Sprintf("product %q: both prices are zero", p.Name))
			}
		}
	}
	return issues
}

func printStart(cfg config.Config) {
	fmt.Printf("checking catalog %q...\n\n", cfg.Catalog.Source)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to load catalog: \n%s\n", err)
}
