package handler

import "net/http"

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.stats.TodoStats(r.Context())
	if err != nil {
		return err
	}
	return writeData(w, http.StatusOK, stats)
}
