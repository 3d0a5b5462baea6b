// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a valid X-Request-ID header from the client (letters,
// digits, '-' and '_', up to 128 characters) or generates a UUIDv7. The ID is
// stored in the request context, echoed in the response header and, through
// LoggerExtractor, added to every log record written with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
