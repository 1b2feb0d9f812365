package httphandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
)

// POST v1/order/whatsapp JSON {"name", "address", "phone"} (200 OK, 400)
// POST v1/order/receipt JSON {"name", "address", "phone"} (200 OK, 400, 503)

type OrderHandler struct {
	composer port.OrderComposer
	linker   port.OrderLinker
	renderer port.ReceiptRenderer
}

func RegisterOrder(
	mux *http.ServeMux,
	composer port.OrderComposer,
	linker port.OrderLinker,
	renderer port.ReceiptRenderer,
) {
	h := OrderHandler{composer, linker, renderer}
	mux.HandleFunc("POST /v1/order/whatsapp", h.PostWhatsApp)
	mux.HandleFunc("POST /v1/order/receipt", h.PostReceipt)
}

func (h OrderHandler) PostWhatsApp(w http.ResponseWriter, r *http.Request) {
	const op = "OrderHandler.PostWhatsApp"
	log := slog.With("op", op)

	o, ok := h.composeOrder(w, r, log)
	if !ok {
		return
	}

	url, err := h.linker.OrderURL(o)
	if err != nil {
		http.Error(w, "failed to build order link", http.StatusInternalServerError)
		log.Error("failed to build order link", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(OrderLink{URL: url}); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("order link built", "reference", o.Reference)
}

func (h OrderHandler) PostReceipt(w http.ResponseWriter, r *http.Request) {
	const op = "OrderHandler.PostReceipt"
	log := slog.With("op", op)

	o, ok := h.composeOrder(w, r, log)
	if !ok {
		return
	}

	if h.renderer == nil {
		writeDomainError(w, domain.ErrExportUnavailable)
		log.Warn("receipt renderer is not wired")
		return
	}

	receipt, err := h.renderer.RenderReceipt(o)
	if err != nil {
		writeDomainError(w, err)
		log.Error("failed to render receipt", "err", err)
		return
	}

	w.Header().Set("Content-Type", receipt.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", receipt.Filename))
	if _, err := w.Write(receipt.Data); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("receipt rendered", "reference", o.Reference)
}

func (h OrderHandler) composeOrder(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) (domain.Order, bool) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return domain.Order{}, false
	}

	customer := domain.CustomerInfo{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}

	o, err := h.composer.ComposeOrder(r.Context(), customer)
	if err != nil {
		writeDomainError(w, err)
		log.Warn("failed to compose order", "err", err)
		return domain.Order{}, false
	}
	return o, true
}
