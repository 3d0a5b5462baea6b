// Package handler provides type-safe HTTP request handling with JSON, HTML
// and DataStar responses.
//
// A handler is a generic function from a bound request to a Response:
//
//	func apply(ctx handler.Context, req ApplyRequest) handler.Response {
//		if errs := validate(req); len(errs) > 0 {
//			return handler.JSONError(errs) // 422 with field details
//		}
//		return handler.JSON(result)
//	}
//
//	r.Post("/applications", handler.Wrap(apply,
//		handler.WithBinders[handler.Context, ApplyRequest](
//			handler.ReadSignals(),
//			binder.JSON(),
//			binder.Form(),
//		),
//		handler.WithErrorHandler[handler.Context, ApplyRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.JSON(data)                      // {"data": ...}
//	handler.JSON(data, WithJSONStatus(201)) // custom status
//	handler.JSONError(err)                  // {"error": {...}} with a status derived from err
//	handler.Templ(component)                // HTML, or an SSE element patch for DataStar
//	handler.TemplStatus(422, component)     // HTML with a custom status
//	handler.Signals(v, patches...)          // DataStar signal patch, JSON for other clients
//
// # DataStar
//
// Requests that accept text/event-stream, carry the Datastar-Request header
// or a datastar query parameter are DataStar requests. Their signals are read
// with ReadSignals and their responses stream as Server-Sent Events.
//
// # Errors
//
// HTTPError pairs a status code with a machine key. ValidationError holds
// per-field messages and renders as 422 with code "validation_error".
// Binder errors map to 415 (media type) or 400 (malformed body). Anything
// else is a 500 whose text is not exposed to JSON clients.
package handler
