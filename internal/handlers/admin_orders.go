package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
)

type AdminHandler struct {
	Orders    *service.Orders
	Sessions  *SessionManager
	Templates *TemplateCache
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	orders, err := h.Orders.ListAll(r.Context())
	if err != nil {
		serverError(w, "list orders", err)
		return
	}
	stats, err := h.Orders.Stats(r.Context())
	if err != nil {
		serverError(w, "order stats", err)
		return
	}

	data := h.Sessions.PageData(w, r)
	data["Orders"] = orders
	data["Stats"] = stats
	h.Templates.Render(w, "admin_orders.html", data)
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	h.decide(w, r, h.Orders.Approve, models.StatusCompleted)
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	h.decide(w, r, h.Orders.Reject, models.StatusRejected)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, apply func(context.Context, string) error, status models.OrderStatus) {
	orderID := r.PathValue("id")
	err := apply(r.Context(), orderID)
	if errors.Is(err, service.ErrNotFound) {
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "update order status", err)
		return
	}

	h.Sessions.Flash(w, r, "success", fmt.Sprintf("Order #%s marked %s.", orderID, status))
	http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
}
