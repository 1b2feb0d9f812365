package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
	"github.com/niksmo/mymarket/pkg/currency"
)

// POST v1/cart/items JSON {"product_id", "variant", "quantity"} (201 Created, 400, 404)
// GET v1/cart (200 OK)
// DELETE v1/cart/items/{index} (204 No content, 404)
// DELETE v1/cart?confirm=true (204 No content, 400)

type CartOperator interface {
	port.CartItemAdder
	port.CartItemRemover
	port.CartClearer
	port.CartViewer
}

type CartHandler struct {
	cart CartOperator
	fmt  currency.Formatter
}

func RegisterCart(
	mux *http.ServeMux, cart CartOperator, f currency.Formatter,
) {
	h := CartHandler{cart, f}
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("DELETE /v1/cart/items/{index}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	item, err := h.cart.AddCartItem(
		r.Context(), req.ProductID, req.Variant, req.Quantity,
	)
	if err != nil {
		writeDomainError(w, err)
		log.Warn("failed to add item", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(h.toLine(item)); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	items := h.cart.CartItems(r.Context())
	totals := h.cart.CartTotals(r.Context())

	view := CartView{
		ItemCount:        totals.ItemCount,
		GrandTotal:       totals.GrandTotal,
		GrandTotalText:   h.fmt.RWF(totals.GrandTotal),
		ShowWithdrawCode: h.cart.HasService(r.Context(), domain.VariantWithdraw),
		Empty:            len(items) == 0,
	}
	if !view.Empty {
		view.PaymentCode = domain.PaymentCode(totals.GrandTotal)
	}
	for _, it := range items {
		view.Lines = append(view.Lines, h.toLine(it))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}

	if err := h.cart.RemoveCartItem(r.Context(), index); err != nil {
		writeDomainError(w, err)
		log.Warn("failed to remove item", "index", index, "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCart requires the explicit confirm parameter: clearing is the
// one destructive action a user must acknowledge.
func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"
	log := slog.With("op", op)

	if r.URL.Query().Get("confirm") != "true" {
		writeDomainError(w, domain.ErrConfirmRequired)
		return
	}

	if err := h.cart.ClearCart(r.Context()); err != nil {
		http.Error(w, "failed to clear cart", http.StatusInternalServerError)
		log.Error("failed to clear cart", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) toLine(it domain.CartItem) CartLine {
	label := it.Label
	if it.Variant == domain.VariantFull {
		label = label + " x " + strconv.Itoa(it.Quantity)
	}
	return CartLine{
		Name:          it.Name,
		VariantLabel:  label,
		Quantity:      it.Quantity,
		LineTotal:     it.LineTotal,
		LineTotalText: h.fmt.RWF(it.LineTotal),
	}
}

// userErrors maps domain sentinels to the status and notice shown to
// the user. Anything unmapped is an internal error.
var userErrors = []struct {
	sentinel error
	status   int
	notice   string
}{
	{domain.ErrNoVariant, http.StatusBadRequest, "no variant selected"},
	{domain.ErrUnknownVariant, http.StatusBadRequest, "unknown variant for product kind"},
	{domain.ErrEmptyCart, http.StatusBadRequest, "cart is empty"},
	{domain.ErrCustomerInfo, http.StatusBadRequest, "customer info is incomplete"},
	{domain.ErrConfirmRequired, http.StatusBadRequest, "confirmation required"},
	{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
	{domain.ErrIndexOutOfRange, http.StatusNotFound, "cart index out of range"},
	{domain.ErrExportUnavailable, http.StatusServiceUnavailable, "receipt renderer is unavailable"},
}

func writeDomainError(w http.ResponseWriter, err error) {
	for _, ue := range userErrors {
		if errors.Is(err, ue.sentinel) {
			http.Error(w, ue.notice, ue.status)
			return
		}
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
