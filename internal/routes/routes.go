package routes

import (
	"github.com/Jeevaranjani21/vdart-backend/internal/auth"
	"github.com/Jeevaranjani21/vdart-backend/internal/handlers"
	"github.com/Jeevaranjani21/vdart-backend/internal/middleware"
	"github.com/Jeevaranjani21/vdart-backend/internal/repositories"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	pdfProxy *handlers.PDFProxyHandler,
	sessionRepo *repositories.SessionRepository,
	userRepo *repositories.UserRepository,
) {
	rateLimitConfig := middleware.DefaultAuthRateLimit()

	// Public auth endpoints, rate limited per IP
	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(rateLimitConfig))
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/resend-otp", authHandler.ResendOTP)
		r.Post("/verify-otp", authHandler.VerifyOTP)
	})

	// Session-protected routes
	router.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware(sessionRepo, userRepo))
		r.Get("/me", authHandler.Me)
	})

	// PDF tool requests are relayed to the external processing backend
	router.Handle("/api/*", pdfProxy)
}
