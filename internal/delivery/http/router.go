package http

import (
	"net/http"

	"scheme-directory/internal/delivery/http/handler"
	"scheme-directory/internal/delivery/http/middleware"
	"scheme-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	schemeHandler     *handler.SchemeHandler
	authHandler       *handler.AuthHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	schemeHandler *handler.SchemeHandler,
	authHandler *handler.AuthHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		schemeHandler:     schemeHandler,
		authHandler:       authHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Scheme directory
	r.router.HandleFunc("/schemes", r.schemeHandler.GetSchemes).Methods(http.MethodGet, http.MethodOptions)
	r.router.HandleFunc("/dynamicschemes", r.schemeHandler.DynamicSchemes).Methods(http.MethodGet, http.MethodOptions)

	// Auth
	r.router.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost, http.MethodOptions)
	r.router.HandleFunc("/signin", r.authHandler.Signin).Methods(http.MethodPost, http.MethodOptions)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
