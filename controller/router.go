package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobform/handler"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which controllers the router mounts. A nil
// controller is skipped.
type RouterOptions struct {
	Application Mountable

	// Middlewares run before every route, in order.
	Middlewares []func(http.Handler) http.Handler
}

// Router creates the application router with a /health check and the
// configured controllers mounted at the root.
//
//	r := controller.Router(controller.RouterOptions{
//		Application: controller.NewApplicationController("Apply", nil, errorHandler, log),
//		Middlewares: []func(http.Handler) http.Handler{requestid.Middleware},
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)

	r.Get("/health", handler.Wrap(health))

	if opts.Application != nil {
		r.Mount("/", opts.Application.Handle())
	}

	return r
}

// HealthResponse is the body of the /health check.
type HealthResponse struct {
	Status string `json:"status"`
}

func health(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(HealthResponse{Status: "ok"})
}
