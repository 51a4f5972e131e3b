package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "gamerental-backend/internal/api/http"
	"gamerental-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

const testToken = "test-token"

type testAPI struct {
	auth     *MockAuthService
	users    *MockUserService
	games    *MockGameService
	rentals  *MockRentalService
	reviews  *MockReviewService
	payments *MockPaymentService
	tokens   *MockTokenManager
	userRepo *MockUserRepo
	router   *mux.Router
}

func newTestAPI() *testAPI {
	a := &testAPI{
		auth:     new(MockAuthService),
		users:    new(MockUserService),
		games:    new(MockGameService),
		rentals:  new(MockRentalService),
		reviews:  new(MockReviewService),
		payments: new(MockPaymentService),
		tokens:   new(MockTokenManager),
		userRepo: new(MockUserRepo),
	}
	a.router = httpapi.NewRouter(
		httpapi.NewAuthHandler(a.auth),
		httpapi.NewUserHandler(a.users),
		httpapi.NewGameHandler(a.games),
		httpapi.NewRentalHandler(a.rentals),
		httpapi.NewReviewHandler(a.reviews),
		httpapi.NewPaymentHandler(a.payments),
		httpapi.NewAuthMiddleware(a.tokens, a.userRepo),
	)
	return a
}

// loginAs wires token validation so requests carrying testToken resolve to
// the given user.
func (a *testAPI) loginAs(user *domain.User) {
	a.tokens.On("Validate", mock.Anything, testToken).Return(&domain.AuthToken{
		Token:     testToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	a.userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
