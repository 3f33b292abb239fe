package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/club-records/internal/adapters/http/dto"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

// RecordHandler exposes the record catalog over HTTP.
type RecordHandler struct {
	svc ports.RecordService
}

// NewRecordHandler creates a new RecordHandler with the given service port.
func NewRecordHandler(svc ports.RecordService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// ListKinds handles GET /api/v1/records.
func (h *RecordHandler) ListKinds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToKindsResponse(h.svc.Kinds()))
}

// Validate handles POST /api/v1/records/{kind}/validate. The body is the raw
// record; the response echoes the constructed record with defaults applied.
func (h *RecordHandler) Validate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	raw, ok := decodeRaw(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Validate(r.Context(), kind, raw)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordResponse{Kind: kind, Record: rec})
}

// ValidateBatch handles POST /api/v1/records/{kind}/batch. Invalid items do
// not fail the request; they are reported per index.
func (h *RecordHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var req dto.BatchRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	items, err := h.svc.ValidateBatch(r.Context(), kind, req.Items)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := dto.ToBatchResponse(kind, items)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
