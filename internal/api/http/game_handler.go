package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/service"

	"github.com/gorilla/mux"
)

type GameHandler struct {
	gameSvc service.GameService
}

func NewGameHandler(gameSvc service.GameService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	game, err := h.gameSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.GameInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}
	game, err := h.gameSvc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var in service.GameInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}
	game, err := h.gameSvc.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.gameSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ByLetter handles GET /api/v1/games/by-letter/{letter}. An empty result is
// reported as 404 with a message, not as an empty list.
func (h *GameHandler) ByLetter(w http.ResponseWriter, r *http.Request) {
	letter := mux.Vars(r)["letter"]
	games, err := h.gameSvc.ListByLetter(r.Context(), letter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "No games start with the given letter.")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}
