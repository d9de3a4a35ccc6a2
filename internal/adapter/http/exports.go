package httpadapter

import "net/http"

// handleExportOverview reports export queue depth per status. It is an
// operational endpoint for inspecting delivery health; failed exports
// surface here and in each record's last_error rather than in ingestion
// responses.
func (h *Handler) handleExportOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.ExportOverview(r.Context())
	if err != nil {
		h.writeError(w, err, "export overview")
		return
	}
	h.writeJSON(w, http.StatusOK, overview)
}
