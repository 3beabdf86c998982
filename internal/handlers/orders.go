package handlers

import (
	"errors"
	"net/http"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
)

type OrderHandler struct {
	Orders    *service.Orders
	Catalog   *service.Catalog
	Sessions  *SessionManager
	Templates *TemplateCache
}

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request, id service.Identity) {
	orders, err := h.Orders.ListForCustomer(r.Context(), id.Username)
	if err != nil {
		serverError(w, "list customer orders", err)
		return
	}
	data := h.Sessions.PageData(w, r)
	data["Orders"] = orders
	h.Templates.Render(w, "customer_orders.html", data)
}

func (h *OrderHandler) OrderForm(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	parts, err := h.Catalog.ListParts(r.Context())
	if err != nil {
		serverError(w, "list parts", err)
		return
	}
	data := h.Sessions.PageData(w, r)
	data["Parts"] = parts
	h.Templates.Render(w, "add_order.html", data)
}

// SubmitOrder places an order for the selected part. An unknown part sends the
// customer back to the form without creating anything.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request, id service.Identity) {
	_, err := h.Orders.CreateOrder(r.Context(), id.Username, r.FormValue("part_id"))
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidInput) {
		http.Redirect(w, r, "/add_order", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "create order", err)
		return
	}

	h.Sessions.Flash(w, r, "success", "Order placed successfully!")
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
