package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/mymarket/config"
	"github.com/niksmo/mymarket/internal/adapter/catalog"
	"github.com/niksmo/mymarket/internal/adapter/export"
	"github.com/niksmo/mymarket/internal/adapter/httphandler"
	"github.com/niksmo/mymarket/internal/adapter/storage"
	"github.com/niksmo/mymarket/internal/core/service"
	"github.com/niksmo/mymarket/pkg/currency"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	fmt        currency.Formatter
	cartRepo   storage.CartRepository
	catalogSvc *service.CatalogService
	cartSvc    *service.CartService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.fmt = currency.NewFormatter(cfg.Locale)
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	cartRepo, err := storage.NewCartRepository(app.cfg.Storage.Path)
	if err != nil {
		app.fallDown(op, err)
	}
	app.cartRepo = cartRepo
}

func (app *App) initCoreServices() {
	const op = "App.initCoreServices"

	loader := catalog.NewLoader(
		app.cfg.Catalog.Source, app.cfg.Catalog.FetchTimeout,
	)
	app.catalogSvc = service.NewCatalogService(loader)

	cartSvc, err := service.NewCartService(
		app.ctx, app.catalogSvc, app.cartRepo,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.cartSvc = cartSvc
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	whatsapp := export.NewWhatsApp(
		app.cfg.Order.WhatsAppNumber, app.cfg.Order.StoreName, app.fmt,
	)

	receipt, err := export.NewReceipt(app.cfg.Order.StoreName, app.fmt)
	if err != nil {
		app.fallDown(op, err)
	}

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.catalogSvc, app.fmt)
	httphandler.RegisterCart(mux, app.cartSvc, app.fmt)
	httphandler.RegisterOrder(mux, app.cartSvc, whatsapp, receipt)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	// Catalog load is fire-and-forget: the storefront serves an
	// empty catalog until it resolves, and a failure is only logged.
	go func() {
		if err := app.catalogSvc.LoadCatalog(app.ctx); err != nil {
			slog.Error("could not load catalog", "err", err)
		}
	}()

	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.cartRepo.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
