package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
)

type CatalogHandler struct {
	Catalog   *service.Catalog
	Sessions  *SessionManager
	Templates *TemplateCache
}

func (h *CatalogHandler) Index(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	h.listParts(w, r, "index.html")
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	h.listParts(w, r, "home.html")
}

func (h *CatalogHandler) listParts(w http.ResponseWriter, r *http.Request, page string) {
	parts, err := h.Catalog.ListParts(r.Context())
	if err != nil {
		serverError(w, "list parts", err)
		return
	}
	data := h.Sessions.PageData(w, r)
	data["Parts"] = parts
	h.Templates.Render(w, page, data)
}

func (h *CatalogHandler) AddForm(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	h.Templates.Render(w, "add.html", h.Sessions.PageData(w, r))
}

func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request, id service.Identity) {
	partID, err := h.Catalog.CreatePart(r.Context(), partInput(r))
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		h.Sessions.Flash(w, r, "error", ve.Messages()...)
		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "create part", err)
		return
	}

	slog.Info("Part created", "part_id", partID, "by", id.Username)
	h.Sessions.Flash(w, r, "success", "Part added successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *CatalogHandler) EditForm(w http.ResponseWriter, r *http.Request, _ service.Identity) {
	part, err := h.Catalog.GetPart(r.Context(), r.PathValue("id"))
	if errors.Is(err, service.ErrNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "get part", err)
		return
	}
	data := h.Sessions.PageData(w, r)
	data["Part"] = part
	h.Templates.Render(w, "edit.html", data)
}

func (h *CatalogHandler) Edit(w http.ResponseWriter, r *http.Request, id service.Identity) {
	partID := r.PathValue("id")
	formURL := "/edit/" + partID

	err := h.Catalog.UpdatePart(r.Context(), partID, partInput(r))
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.Sessions.Flash(w, r, "error", "Part not found.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.Is(err, service.ErrConflict):
		h.Sessions.Flash(w, r, "error", "This part was changed by someone else. Review the current values and try again.")
		http.Redirect(w, r, formURL, http.StatusSeeOther)
		return
	case errors.As(err, &ve):
		h.Sessions.Flash(w, r, "error", ve.Messages()...)
		http.Redirect(w, r, formURL, http.StatusSeeOther)
		return
	case err != nil:
		serverError(w, "update part", err)
		return
	}

	slog.Info("Part updated", "part_id", partID, "by", id.Username)
	h.Sessions.Flash(w, r, "success", "Part updated successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request, id service.Identity) {
	partID := r.PathValue("id")
	err := h.Catalog.DeletePart(r.Context(), partID)
	if errors.Is(err, service.ErrNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "delete part", err)
		return
	}

	slog.Info("Part deleted", "part_id", partID, "by", id.Username)
	h.Sessions.Flash(w, r, "success", "Part deleted successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func partInput(r *http.Request) service.PartInput {
	return service.PartInput{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		Price:    r.FormValue("price"),
		Version:  r.FormValue("version"),
	}
}
