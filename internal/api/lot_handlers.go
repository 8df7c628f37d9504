package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"parksmart/internal/catalog"
	"parksmart/internal/entities"
	apperrors "parksmart/internal/errors"
	"parksmart/internal/pricing"

	"github.com/gorilla/mux"
)

type LotHandler struct {
	Lots *catalog.Store
}

func NewLotHandler(lots *catalog.Store) *LotHandler {
	return &LotHandler{Lots: lots}
}

// ListLots runs the catalog query pipeline: ?q= search, ?filter= feature,
// ?sort= key, ?limit= page size so far.
func (h *LotHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Search: r.URL.Query().Get("q"),
		Filter: catalog.Filter(r.URL.Query().Get("filter")),
		Sort:   catalog.SortKey(r.URL.Query().Get("sort")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, apperrors.ErrBadRequest("Invalid limit"))
			return
		}
		q.Limit = limit
	}

	lots := h.Lots.Find(q)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"lots":       lots,
		"total":      h.Lots.Len(),
		"next_limit": catalog.NextLimit(len(lots), h.Lots.Len()),
	})
}

func (h *LotHandler) GetLot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid lot id"))
		return
	}
	lot, ok := h.Lots.Get(id)
	if !ok {
		writeError(w, apperrors.ErrNotFound("Parking lot not found"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lot)
}

// Quote prices a prospective time range. An incomplete or inverted range
// returns a zero quote rather than an error.
func (h *LotHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrBadRequest("Invalid request"))
		return
	}
	lot, ok := h.Lots.Get(req.LotID)
	if !ok {
		writeError(w, apperrors.ErrNotFound("Parking lot not found"))
		return
	}

	est := pricing.Quote(lot.PricePerHour, req.StartTime, req.EndTime)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entities.QuoteResponse{
		LotID:         lot.ID,
		Hours:         est.Hours,
		EffectiveRate: est.EffectiveRate,
		TotalPrice:    est.Total,
		Tier:          string(est.Tier),
		TierLabel:     est.Tier.Label(),
	})
}
