package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/tarunbommali/ekart/internal/http/handlers"
)

// NewRouter wires the product resource at the root, matching the
// client's expectation of a single-resource API.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handlers.GetProductsHandler)
	r.Post("/", handlers.CreateProductHandler)
	r.Put("/{id}", handlers.UpdateProductHandler)
	r.Delete("/{id}", handlers.DeleteProductHandler)
	return r
}

// NewServerHandler stacks the ambient middleware on top of the routes:
// request ids, request logging, rate limiting and the browser CORS
// policy for the configured origin.
func NewServerHandler(allowedOrigin string) http.Handler {
	h := NewRouter()
	h = cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{http.MethodPost, http.MethodGet, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})(h)
	h = RateLimitMiddleware(h)
	h = LoggingMiddleware(h)
	h = RequestIDMiddleware(h)
	return h
}
