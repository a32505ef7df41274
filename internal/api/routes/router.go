package routes

import (
	"net/http"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/handlers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/middleware"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	chatHandler *handlers.ChatHandler

	profileHandler *handlers.ProfileHandler

	conditionHandler *handlers.ConditionHandler

	healthHandler *handlers.HealthHandler

	cacheMiddleware *middleware.CacheMiddleware
	userResolver    middleware.UserResolver
	metrics         *observability.Metrics
}

// NewRouter creates a new router

func NewRouter(

	chatHandler *handlers.ChatHandler,

	profileHandler *handlers.ProfileHandler,

	conditionHandler *handlers.ConditionHandler,

	healthHandler *handlers.HealthHandler,

	cacheMiddleware *middleware.CacheMiddleware,
	userResolver middleware.UserResolver,

	metrics *observability.Metrics,

) *Router {

	return &Router{

		mux: http.NewServeMux(),

		chatHandler: chatHandler,

		profileHandler: profileHandler,

		conditionHandler: conditionHandler,

		healthHandler: healthHandler,

		cacheMiddleware: cacheMiddleware,
		userResolver:    userResolver,
		metrics:         metrics,
	}

}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint

	r.mux.HandleFunc("GET /health", r.healthHandler.Check)

	// Chat endpoints

	r.mux.HandleFunc("POST /api/chat", r.chatHandler.SendMessage)

	r.mux.HandleFunc("GET /api/chat/history", r.chatHandler.GetHistory)

	r.mux.HandleFunc("DELETE /api/chat/history", r.chatHandler.ClearHistory)

	// Profile endpoints

	r.mux.HandleFunc("GET /api/profile", r.profileHandler.GetProfile)

	r.mux.HandleFunc("PUT /api/profile", r.profileHandler.UpdateProfile)

	// Knowledge-base endpoints

	r.mux.HandleFunc("GET /api/conditions", r.conditionHandler.ListConditions)

	r.mux.HandleFunc("GET /api/conditions/{name}", r.conditionHandler.GetCondition)

	// Apply middleware in reverse order (last middleware wraps first).
	// Auth sits outside the response cache so a cache HIT still requires
	// a valid token; CORS is outermost so every response gets headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.AuthMiddleware(r.userResolver)(handler)

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	handler = middleware.CORSMiddleware(handler)

	return handler
}
