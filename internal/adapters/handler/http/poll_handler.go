package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Creates a poll owned by the authenticated user. Blank options are dropped, 2 to 10 must remain.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      401
// @Router       /api/polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req createPollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	poll, err := h.service.Create(r.Context(), ports.CreatePollInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		Options:     req.Options,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, poll)
}

// ListPolls godoc
// @Summary      Lists active polls
// @Description  Newest first. `page` starts at 1 and holds 10 polls; without it every active poll is returned. `q` filters by title.
// @Tags         polls
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /api/polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	input := ports.ListPollsInput{Query: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			writeErrorMessage(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		input.Page = page
	}

	polls, err := h.service.ListActivePolls(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(polls))
}

func (h *PollHandler) ListMyPolls(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "missing user context")
		return
	}

	polls, err := h.service.ListUserPolls(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(polls))
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	var voterID *uuid.UUID
	if userID, ok := userIDFromContext(r.Context()); ok {
		voterID = &userID
	}

	poll, err := h.service.GetPoll(r.Context(), chi.URLParam(r, "id"), voterID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) GetPollOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.GetPollOptions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if options == nil {
		options = []domain.PollOption{}
	}
	writeJSON(w, http.StatusOK, options)
}

func nonNil(polls []*domain.Poll) []*domain.Poll {
	if polls == nil {
		return []*domain.Poll{}
	}
	return polls
}
