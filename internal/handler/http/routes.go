package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/verify-otp", h.verifyOTP)
		r.Post("/api/auth/resend-otp", h.resendOTP)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/resources", h.listResources)
		r.Get("/api/resources/{resourceID}", h.getResource)
		r.Get("/api/resources/{resourceID}/download", h.downloadResource)

		r.Get("/api/feedback/resource/{resourceID}", h.feedbackForResource)

		r.Get("/api/calendar", h.listCalendar)

		r.Post("/api/newsletter/subscribe", h.subscribe)
		r.Post("/api/newsletter/unsubscribe", h.unsubscribe)

		r.Get("/api/health", h.health)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/resources", h.uploadResource)
		r.Get("/api/resources/my/uploads", h.myUploads)
		r.Patch("/api/resources/{resourceID}/approve", h.approveResource)

		r.Get("/api/bookmarks", h.listBookmarks)
		r.Post("/api/bookmarks/{resourceID}", h.addBookmark)
		r.Delete("/api/bookmarks/{resourceID}", h.removeBookmark)

		r.Post("/api/feedback", h.addFeedback)
		r.Get("/api/feedback/my", h.myFeedback)
		r.Put("/api/feedback/{feedbackID}", h.updateFeedback)
		r.Delete("/api/feedback/{feedbackID}", h.deleteFeedback)

		r.Post("/api/calendar", h.addCalendarEvent)
	})

	return router
}
