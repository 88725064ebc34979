package main

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/infra/http/handlers"
	"github.com/ethiocodes/nexora/internal/infra/http/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeHandlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Leads       *handlers.LeadHandler
	CRM         *handlers.CRMHandler
	Bookings    *handlers.BookingHandler
	Services    *handlers.ServiceHandler
	Blog        *handlers.BlogHandler
	Testimonial *handlers.TestimonialHandler
	Content     *handlers.ContentHandler
	Calendar    *handlers.CalendarHandler
	Dashboard   *handlers.DashboardHandler
	View        *handlers.ViewHandler
}

func newRouter(h routeHandlers, sessions middleware.SessionVerifier, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Site público
	r.Post("/leads", h.Leads.CaptureLead)
	r.Post("/calendar-link", h.Calendar.Link)
	r.Route("/content", func(r chi.Router) {
		r.Get("/services", h.Services.List)
		r.Get("/services/{id}", h.Services.Get)
		r.Get("/blog", h.Blog.List)
		r.Get("/blog/{slug}", h.Blog.Get)
		r.Get("/testimonials", h.Testimonial.List)
		r.Get("/features", h.Content.Features)
		r.Get("/pricing", h.Content.Pricing)
		r.Get("/faqs", h.Content.FAQs)
	})

	// Painel
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(sessions))
			adminRoutes(r, h)
		})
	})

	return r
}

func adminRoutes(r chi.Router, h routeHandlers) {
	r.Get("/dashboard", h.Dashboard.Handle)

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", h.Leads.List)
		r.Post("/", h.Leads.Create)
		r.Get("/tags", h.Leads.Tags)
		r.Get("/{id}", h.Leads.Get)
		r.Put("/{id}", h.Leads.Update)
		r.Delete("/{id}", h.Leads.Delete)
		r.Put("/{id}/status", h.Leads.UpdateStatus)
		r.Post("/{id}/tags/{tag}", h.Leads.ToggleTag)
		r.Get("/{id}/interactions", h.CRM.Open)
		r.Post("/{id}/interactions", h.CRM.Send)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.Bookings.List)
		r.Post("/", h.Bookings.Create)
		r.Put("/{id}/status", h.Bookings.UpdateStatus)
		r.Delete("/{id}", h.Bookings.Cancel)
	})

	r.Get("/services", h.Services.List)
	r.Post("/services", h.Services.Save)
	r.Delete("/services/{id}", h.Services.Delete)

	r.Get("/blog", h.Blog.List)
	r.Post("/blog", h.Blog.Save)
	r.Delete("/blog/{slug}", h.Blog.Delete)

	r.Get("/testimonials", h.Testimonial.List)
	r.Post("/testimonials", h.Testimonial.Create)
	r.Put("/testimonials/{id}", h.Testimonial.Update)
	r.Delete("/testimonials/{id}", h.Testimonial.Delete)

	r.Get("/view", h.View.State)
	r.Put("/view/tab", h.View.SetTab)
	r.Put("/view/lead/{id}", h.View.SelectLead)
	r.Delete("/view/lead", h.View.ClearSelection)
}
