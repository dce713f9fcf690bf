package httpapi

import (
	"net/http"

	"foodie-hub/order-svc/internal/domain"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	page, err := h.Restaurants.List(r.Context(), pageRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := decodeJSON(w, r, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var rest domain.Restaurant
	if err := decodeJSON(w, r, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	rest.ID = id
	if err := h.Restaurants.Update(r.Context(), &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Restaurants.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Restaurant deactivated successfully",
		"restaurant": rest,
	})
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	includeUnavailable := r.URL.Query().Get("include_unavailable") == "true"
	rest, items, err := h.Restaurants.Menu(r.Context(), id, includeUnavailable)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"restaurant": rest,
		"menu_items": items,
	})
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, orders, err := h.Orders.ByRestaurant(r.Context(), id, r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"restaurant": rest,
		"orders":     orders,
	})
}
