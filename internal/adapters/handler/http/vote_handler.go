package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	OptionID uuid.UUID `json:"option_id"`
}

type userVoteResponse struct {
	OptionID uuid.UUID `json:"option_id"`
}

// VoteOnPoll godoc
// @Summary      Votes on a poll
// @Description  Records the authenticated user's vote. Voting again replaces the previous choice.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      201  "first vote"
// @Success      200  "vote changed"
// @Failure      400
// @Failure      401
// @Failure      404
// @Router       /api/polls/{id}/votes [post]
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, domain.ErrInvalidPollID)
		return
	}

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vote, created, err := h.service.Vote(r.Context(), ports.VoteInput{
		PollID:   pollID,
		OptionID: req.OptionID,
		UserID:   userID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, vote)
}

func (h *VoteHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, domain.ErrInvalidPollID)
		return
	}

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing user context")
		return
	}

	vote, err := h.service.GetUserVote(r.Context(), pollID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userVoteResponse{OptionID: vote.OptionID})
}
