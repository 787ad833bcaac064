package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{service: service}
}

type optionVotesResponse struct {
	OptionID  uuid.UUID `json:"option_id"`
	VoteCount int64     `json:"vote_count"`
}

// GetPollResults godoc
// @Summary      Poll results
// @Description  Per option vote counts and percentages, most voted first.
// @Tags         results
// @Produce      json
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /api/polls/{id}/results [get]
func (h *ResultHandler) GetPollResults(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, domain.ErrInvalidPollID)
		return
	}

	results, err := h.service.GetPollResults(r.Context(), pollID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *ResultHandler) GetOptionVotes(w http.ResponseWriter, r *http.Request) {
	optionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid option id")
		return
	}

	count, err := h.service.GetOptionVoteCount(r.Context(), optionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, optionVotesResponse{OptionID: optionID, VoteCount: count})
}
