// Package controller exposes the job application form over HTTP.
//
// ApplicationController binds a jobform.FormState from DataStar signals,
// JSON or form posts, normalizes and validates it, and answers in the
// format the client speaks:
//
//	GET  /                       form page, pre-filled from query parameters
//	POST /applications           summary, or field errors with 422
//	POST /applications/validate  live validation signals {errors, valid}
//
// Router adds a /health check and mounts the controller:
//
//	errorHandler := handler.NewErrorHandler(log, view.ErrorHandlerConfig())
//	app := controller.NewApplicationController("Job Application", nil, errorHandler, log)
//	srv.Run(ctx, controller.Router(controller.RouterOptions{Application: app}))
//
// Field values are never logged, only field names and the position.
package controller
