package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brewnote/cafe-menu/internal/middleware"
	"github.com/brewnote/cafe-menu/internal/models"
	"github.com/brewnote/cafe-menu/internal/storage"
)

// MenuHandler handles menu reads and guarded menu mutations.
type MenuHandler struct {
	store storage.Store
}

// NewMenuHandler creates a MenuHandler with the given storage backend.
func NewMenuHandler(store storage.Store) *MenuHandler {
	return &MenuHandler{store: store}
}

// ListItems handles GET /api/menu.
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// ListCategories handles GET /api/categories.
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, http.StatusOK, categories)
}

// CreateItem handles POST /api/admin/menu. The body may carry any subset of
// item fields; they are stored as-is over a blank record, no validation.
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}

	item, err := h.store.CreateItem(r.Context(), patch)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("item created", "id", item.ID, "name", item.Name, "admin", middleware.Username(r.Context()))
	respondJSON(w, http.StatusOK, item)
}

// UpdateItem handles PUT /api/admin/menu/{id}. Body fields win over stored
// ones; fields absent from the body are preserved.
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		// A non-numeric id matches no item.
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}

	item, err := h.store.UpdateItem(r.Context(), id, patch)
	if errors.Is(err, storage.ErrItemNotFound) {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to update item", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("item updated", "id", id, "admin", middleware.Username(r.Context()))
	respondJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/admin/menu/{id}. Deletion is idempotent:
// it reports success whether or not anything matched, and a non-numeric id
// is a silent no-op.
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err == nil {
		if err := h.store.DeleteItem(r.Context(), id); err != nil {
			slog.Error("failed to delete item", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		slog.Info("item deleted", "id", id, "admin", middleware.Username(r.Context()))
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateCategory handles POST /api/admin/categories. Adding an existing
// label is a no-op; the response is the resulting category list either way.
func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	categories, err := h.store.AddCategory(r.Context(), req.Name)
	if err != nil {
		slog.Error("failed to add category", "name", req.Name, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("category added", "name", req.Name, "admin", middleware.Username(r.Context()))
	respondJSON(w, http.StatusOK, categories)
}

// DeleteCategory handles DELETE /api/admin/categories/{name}. Like item
// deletion, removing an absent label still reports success.
func (h *MenuHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.store.DeleteCategory(r.Context(), name); err != nil {
		slog.Error("failed to delete category", "name", name, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("category deleted", "name", name, "admin", middleware.Username(r.Context()))
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// decodePatch reads an ItemPatch from the request body. An empty body is a
// valid empty patch; malformed JSON is a 400. Unknown fields are ignored,
// not rejected.
func decodePatch(w http.ResponseWriter, r *http.Request) (*models.ItemPatch, bool) {
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &patch, true
}
