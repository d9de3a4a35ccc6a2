package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
)

// ingestRequest is the wire form of one daily performance report.
type ingestRequest struct {
	FlightID    *int64         `json:"flight_id,omitempty"`
	MetricDate  string         `json:"metric_date"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	Spend       float64        `json:"spend"`
	Revenue     float64        `json:"revenue"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// metricResponse is the wire form of a persisted daily metric.
type metricResponse struct {
	ID           int64          `json:"id"`
	CampaignID   int64          `json:"campaign_id"`
	FlightID     *int64         `json:"flight_id,omitempty"`
	MetricDate   string         `json:"metric_date"`
	Impressions  int64          `json:"impressions"`
	Clicks       int64          `json:"clicks"`
	Conversions  int64          `json:"conversions"`
	Spend        float64        `json:"spend"`
	Revenue      float64        `json:"revenue"`
	SpendTarget  *float64       `json:"spend_target,omitempty"`
	CTR          *float64       `json:"ctr,omitempty"`
	CVR          *float64       `json:"cvr,omitempty"`
	AnomalyScore *float64       `json:"anomaly_score,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	ExportedAt   *time.Time     `json:"exported_at,omitempty"`
}

// handleIngest processes one daily performance report for a campaign. The
// metric date is expected as YYYY-MM-DD. Unknown campaigns or flights
// produce HTTP 404, a flight belonging to another campaign or a malformed
// date produce HTTP 400, and internal errors produce HTTP 500.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var req ingestRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	metricDate, err := time.Parse("2006-01-02", req.MetricDate)
	if err != nil {
		http.Error(w, "invalid metric_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Ingest(r.Context(), campaignID, port.IngestRequest{
		FlightID:    req.FlightID,
		MetricDate:  metricDate,
		Impressions: req.Impressions,
		Clicks:      req.Clicks,
		Conversions: req.Conversions,
		Spend:       req.Spend,
		Revenue:     req.Revenue,
		Metadata:    req.Metadata,
	})
	if err != nil {
		h.writeError(w, err, "ingest metric")
		return
	}

	h.writeJSON(w, http.StatusOK, toMetricResponse(m))
}

func toMetricResponse(m *domain.DailyMetric) metricResponse {
	return metricResponse{
		ID:           m.ID,
		CampaignID:   m.CampaignID,
		FlightID:     m.FlightID,
		MetricDate:   m.MetricDate.Format("2006-01-02"),
		Impressions:  m.Impressions,
		Clicks:       m.Clicks,
		Conversions:  m.Conversions,
		Spend:        m.Spend,
		Revenue:      m.Revenue,
		SpendTarget:  m.SpendTarget,
		CTR:          m.CTR,
		CVR:          m.CVR,
		AnomalyScore: m.AnomalyScore,
		Metadata:     m.Metadata,
		ExportedAt:   m.ExportedAt,
	}
}

// writeError maps port sentinel errors to HTTP statuses; anything else is
// logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrFlightNotFound),
		errors.Is(err, port.ErrSignalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrFlightMismatch),
		errors.Is(err, port.ErrInvalidMetricDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
