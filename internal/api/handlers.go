package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/segmental-dev/segmental/internal/model"
	"github.com/segmental-dev/segmental/internal/rfm"
)

// scorePayload is the JSON shape of a scored customer.
type scorePayload struct {
	CustomerID string          `json:"customer_id"`
	Recency    int             `json:"recency"`
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`
	RScore     int             `json:"r_score"`
	FScore     int             `json:"f_score"`
	MScore     int             `json:"m_score"`
	RFMScore   string          `json:"rfm_score"`
	Segment    string          `json:"segment"`
}

// statsPayload is the JSON shape of per-segment summary stats.
type statsPayload struct {
	Count         int             `json:"count"`
	AvgRecency    decimal.Decimal `json:"avg_recency"`
	AvgFrequency  decimal.Decimal `json:"avg_frequency"`
	AvgMonetary   decimal.Decimal `json:"avg_monetary"`
	TotalMonetary decimal.Decimal `json:"total_monetary"`
}

func toScorePayloads(scores []rfm.Score) []scorePayload {
	out := make([]scorePayload, len(scores))
	for i, s := range scores {
		out[i] = scorePayload{
			CustomerID: s.CustomerID,
			Recency:    s.Recency,
			Frequency:  s.Frequency,
			Monetary:   s.Monetary,
			RScore:     s.RScore,
			FScore:     s.FScore,
			MScore:     s.MScore,
			RFMScore:   s.RFM(),
			Segment:    s.Segment(),
		}
	}
	return out
}

func toSummaryPayload(summary map[string]rfm.SegmentStats) map[string]statsPayload {
	out := make(map[string]statsPayload, len(summary))
	for segment, stats := range summary {
		out[segment] = statsPayload{
			Count:         stats.Count,
			AvgRecency:    stats.AvgRecency,
			AvgFrequency:  stats.AvgFrequency,
			AvgMonetary:   stats.AvgMonetary,
			TotalMonetary: stats.TotalMonetary,
		}
	}
	return out
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "segmental API is running",
	})
}

// handleScores handles POST /api/rfm/scores: purchase records in, scores out.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	purchases, ok := s.decodePurchases(w, r)
	if !ok {
		return
	}
	scores := s.scorer.CalculateScores(purchases)
	writeJSON(w, http.StatusOK, toScorePayloads(scores))
}

// handleSummary handles POST /api/rfm/summary: purchase records in,
// per-segment stats out.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	purchases, ok := s.decodePurchases(w, r)
	if !ok {
		return
	}
	summary := rfm.SegmentSummary(s.scorer.CalculateScores(purchases))
	writeJSON(w, http.StatusOK, toSummaryPayload(summary))
}

// handleSegments handles GET /api/rfm/segments: scores the stored
// transaction dataset and returns the per-segment summary.
func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		s.logger.Error("loading transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "transaction dataset unavailable")
		return
	}

	scores := s.scorer.CalculateScores(model.PurchaseRecords(txns))
	writeJSON(w, http.StatusOK, toSummaryPayload(rfm.SegmentSummary(scores)))
}

func (s *Server) decodePurchases(w http.ResponseWriter, r *http.Request) ([]model.PurchaseRecord, bool) {
	var purchases []model.PurchaseRecord
	if err := json.NewDecoder(r.Body).Decode(&purchases); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return purchases, true
}
