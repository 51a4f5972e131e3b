package http

import (
	"net/http"
	"strconv"

	"gamerental-backend/internal/domain"

	"github.com/gorilla/mux"
)

// pathID reads a numeric path variable. Routes constrain ids to digits, so
// a parse failure means the route itself is wrong.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return int32(id), nil
}

// requireActor fetches the authenticated user, writing a 401 when the
// middleware did not attach one.
func requireActor(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication credentials were not provided."})
	}
	return user, ok
}
