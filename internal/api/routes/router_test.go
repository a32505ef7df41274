package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/handlers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/routes"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/application/services"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	apperrors "github.com/GowthamPulluri/Healthcare-chatbot/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type routerChatService struct{}

func (routerChatService) ProcessMessage(ctx context.Context, user *entities.User, message string) (*entities.ChatResult, error) {
	return &entities.ChatResult{
		Response:         "Stay hydrated.",
		Suggestions:      []string{"Rest"},
		Intent:           entities.IntentGeneralHealth,
		Confidence:       0.5,
		Entities:         []string{},
		DetectedLanguage: "en",
	}, nil
}

func (routerChatService) GetHistory(ctx context.Context, userID string, limit int) ([]*entities.ChatMessage, error) {
	return []*entities.ChatMessage{}, nil
}

func (routerChatService) ClearHistory(ctx context.Context, userID string) error {
	return nil
}

type routerProfileService struct{}

func (routerProfileService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	return &entities.User{ID: userID, Name: "Asha", PreferredLanguage: "en", Conditions: []string{}}, nil
}

func (routerProfileService) UpdateProfile(ctx context.Context, userID string, update services.ProfileUpdate) (*entities.User, error) {
	return &entities.User{ID: userID, Name: "Asha", PreferredLanguage: "hi", Conditions: []string{}}, nil
}

type routerCatalog struct{}

func (routerCatalog) Lookup(name string) (*entities.MedicalCondition, bool) {
	if name == "malaria" {
		return &entities.MedicalCondition{Name: "malaria"}, true
	}
	return nil, false
}

func (routerCatalog) List() []string {
	return []string{"dengue", "malaria"}
}

type routerUserResolver struct{}

func (routerUserResolver) GetByAPIToken(ctx context.Context, token string) (*entities.User, error) {
	if token == "dev-token" {
		return &entities.User{ID: "user-1", Name: "Asha", PreferredLanguage: "en"}, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func newTestRouter() http.Handler {
	router := routes.NewRouter(
		handlers.NewChatHandler(routerChatService{}),
		handlers.NewProfileHandler(routerProfileService{}),
		handlers.NewConditionHandler(routerCatalog{}),
		handlers.NewHealthHandler(),
		nil,
		routerUserResolver{},
		nil,
	)
	return router.SetupRoutes()
}

func doRequest(handler http.Handler, method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if authenticated {
		req.Header.Set("Authorization", "Bearer dev-token")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRouter_ServesAllRoutes(t *testing.T) {
	handler := newTestRouter()

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"health", "GET", "/health", ""},
		{"send message", "POST", "/api/chat", `{"message":"hello"}`},
		{"history", "GET", "/api/chat/history", ""},
		{"clear history", "DELETE", "/api/chat/history", ""},
		{"get profile", "GET", "/api/profile", ""},
		{"update profile", "PUT", "/api/profile", `{"preferredLanguage":"hi"}`},
		{"list conditions", "GET", "/api/conditions", ""},
		{"condition detail", "GET", "/api/conditions/malaria", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(handler, tc.method, tc.target, tc.body, true)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_AuthGuardsAPIGroupOnly(t *testing.T) {
	handler := newTestRouter()

	w := doRequest(handler, "GET", "/api/profile", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(handler, "GET", "/health", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	handler := newTestRouter()

	w := doRequest(handler, "GET", "/api/nope", "", true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(handler, "POST", "/api/profile", `{}`, true)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_UnknownConditionIs404(t *testing.T) {
	handler := newTestRouter()

	w := doRequest(handler, "GET", "/api/conditions/leprosy", "", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CacheHeadersPerRoute(t *testing.T) {
	handler := newTestRouter()

	w := doRequest(handler, "GET", "/api/conditions", "", true)
	assert.Equal(t, "public, max-age=600, must-revalidate", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("ETag"))

	w = doRequest(handler, "GET", "/api/chat/history", "", true)
	assert.Equal(t, "private, no-store", w.Header().Get("Cache-Control"))
}

func TestRouter_PreflightSkipsAuth(t *testing.T) {
	handler := newTestRouter()

	req := httptest.NewRequest("OPTIONS", "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}
