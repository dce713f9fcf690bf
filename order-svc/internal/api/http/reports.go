package httpapi

import (
	"net/http"

	"foodie-hub/order-svc/internal/domain"
)

func (h *Handler) getPopularMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Reports.PopularMenuItems(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.PopularItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getSalesReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	report, err := h.Reports.SalesReport(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
