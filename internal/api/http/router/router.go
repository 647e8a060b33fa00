package router

import (
	"net/http"

	"github.com/sentra-app/auth-server/internal/api/http/handler"
	"github.com/sentra-app/auth-server/internal/api/http/middleware"
	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/model"
)

// Router wires authentication handlers and middleware into an HTTP
// handler tree.
type Router struct {
	authService    handler.AuthService
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	cookies        handler.CookieConfig
	frontendURL    string
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	cookies handler.CookieConfig,
	frontendURL string,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		cookies:        cookies,
		frontendURL:    frontendURL,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the route table with logging, CORS and cookie
// authentication applied.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.cookies, r.frontendURL, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/v1/auth/verify-otp", authHandler.VerifyOTP)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/v1/auth/google/login", authHandler.GoogleLogin)
	mux.HandleFunc("GET /api/v1/auth/google/callback", authHandler.GoogleCallback)
	mux.HandleFunc("GET /api/v1/health", authHandler.Health)

	mux.Handle("GET /api/v1/users/me", authenticate.Handle(http.HandlerFunc(authHandler.Me)))
	mux.Handle("DELETE /api/v1/users/me", authenticate.Handle(http.HandlerFunc(authHandler.DeleteMe)))

	logging := middleware.NewLogging(r.logger)
	cors := middleware.NewCORS(r.allowedOrigins)

	return logging.Handle(cors.Handle(mux))
}
