package httpapi

import (
	"net/http"

	"foodie-hub/order-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	page, err := h.Customers.List(r.Context(), pageRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(w, r, &customer); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Customers.Create(r.Context(), &customer); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	customer, err := h.Customers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) getCustomerByPhone(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Customers.GetByPhone(r.Context(), mux.Vars(r)["phone"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var customer domain.Customer
	if err := decodeJSON(w, r, &customer); err != nil {
		h.writeError(w, r, err)
		return
	}
	customer.ID = id
	if err := h.Customers.Update(r.Context(), &customer); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Customers.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Customer deleted successfully")
}

func (h *Handler) searchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	customer, orders, err := h.Orders.ByCustomer(r.Context(), id, r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"customer": customer,
		"orders":   orders,
	})
}

func (h *Handler) getCustomerOrderHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	customer, history, err := h.Reports.CustomerOrderHistory(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if history == nil {
		history = []domain.OrderHistoryRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"customer":      customer,
		"order_history": history,
	})
}
