package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pacewatch/internal/core/domain"
)

// signalResponse is the wire form of a fraud signal.
type signalResponse struct {
	ID             int64          `json:"id"`
	CampaignID     int64          `json:"campaign_id"`
	FlightID       *int64         `json:"flight_id,omitempty"`
	MetricDate     string         `json:"metric_date"`
	Type           string         `json:"type"`
	Severity       string         `json:"severity"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	DetectedAt     time.Time      `json:"detected_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
	ResolutionNote *string        `json:"resolution_note,omitempty"`
}

// handleListSignals returns a campaign's fraud signals. Resolved signals are
// excluded unless the include_resolved query parameter is truthy.
func (h *Handler) handleListSignals(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	includeResolved, _ := strconv.ParseBool(r.URL.Query().Get("include_resolved"))

	signals, err := h.svc.ListSignals(r.Context(), campaignID, includeResolved)
	if err != nil {
		h.writeError(w, err, "list signals")
		return
	}

	out := make([]signalResponse, 0, len(signals))
	for i := range signals {
		out = append(out, toSignalResponse(&signals[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleResolveSignal manually resolves a signal with an optional note.
// Resolving an already-resolved signal returns the existing record.
func (h *Handler) handleResolveSignal(w http.ResponseWriter, r *http.Request) {
	signalID, err := strconv.ParseInt(chi.URLParam(r, "signalID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid signal id", http.StatusBadRequest)
		return
	}

	var body struct {
		Note string `json:"note"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
	}

	sig, err := h.svc.ResolveSignal(r.Context(), signalID, body.Note)
	if err != nil {
		h.writeError(w, err, "resolve signal")
		return
	}
	h.writeJSON(w, http.StatusOK, toSignalResponse(sig))
}

func toSignalResponse(s *domain.FraudSignal) signalResponse {
	return signalResponse{
		ID:             s.ID,
		CampaignID:     s.CampaignID,
		FlightID:       s.FlightID,
		MetricDate:     s.MetricDate.Format("2006-01-02"),
		Type:           string(s.Type),
		Severity:       string(s.Severity),
		Metadata:       s.Metadata,
		DetectedAt:     s.DetectedAt,
		ResolvedAt:     s.ResolvedAt,
		ResolutionNote: s.ResolutionNote,
	}
}
