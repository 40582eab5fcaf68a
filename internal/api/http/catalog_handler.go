package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"unirent-backend/internal/service"

	"github.com/gorilla/mux"
)

const defaultFeaturedCount = 6

// CatalogHandler serves the item listing routes
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.ListItems(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Category returns the category's items grouped under canonical subcategory
// keys, the shape the listing pages render.
func (h *CatalogHandler) Category(w http.ResponseWriter, r *http.Request) {
	categoryKey := mux.Vars(r)["category"]
	groups, err := h.catalogSvc.CategoryListing(r.Context(), categoryKey)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	count := defaultFeaturedCount
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	items, err := h.catalogSvc.FeaturedItems(r.Context(), int32(count))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalogSvc.GetItem(r.Context(), mux.Vars(r)["item_id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *CatalogHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.catalogSvc.SetQuantity(r.Context(), mux.Vars(r)["item_id"], req.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Quantity updated"})
}

func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.DeleteItem(r.Context(), mux.Vars(r)["item_id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Item deleted"})
}
