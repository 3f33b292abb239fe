package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/club-records/internal/adapters/http/dto"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

// ClubHandler handles club generation requests.
type ClubHandler struct {
	svc ports.ClubService
}

// NewClubHandler creates a new ClubHandler with the given service port.
func NewClubHandler(svc ports.ClubService) *ClubHandler {
	return &ClubHandler{svc: svc}
}

// Generate handles POST /api/v1/clubs/generate. The body is optional.
func (h *ClubHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateClubRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	c, err := h.svc.Generate(r.Context(), req.ToSpec())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ClubResponse{Club: c})
}
