package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/jobform/pkg/logger"
	"github.com/dmitrymomot/jobform/pkg/requestid"
)

// GenericErrorMessage is shown for errors whose text must not reach the
// client.
const GenericErrorMessage = "An error occurred processing your request"

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" for 5xx, "warning" for 4xx, otherwise "info"
	RequestID string
}

// ErrorHandlerConfig holds the components NewErrorHandler renders.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	ToastTarget string                    // default "#toast-container"
	ToastMode   datastar.ElementPatchMode // default PatchPrepend
}

// failure is an error resolved to what the client is told.
type failure struct {
	status  int
	message string
}

func classify(err error) failure {
	f := failure{status: http.StatusInternalServerError, message: GenericErrorMessage}

	if httpErr, ok := asHTTPError(err); ok {
		f = failure{status: httpErr.Code, message: httpErr.Key}
	}

	// A validation error wins over any HTTPError wrapping it.
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		f = failure{status: http.StatusUnprocessableEntity, message: validationErr.Error()}
	}
	return f
}

func (f failure) kind() string {
	switch {
	case f.status >= http.StatusInternalServerError:
		return "error"
	case f.status >= http.StatusBadRequest:
		return "warning"
	}
	return "info"
}

func (f failure) level() slog.Level {
	if f.status >= http.StatusBadRequest && f.status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// WantsJSON reports whether the client asked for or sent JSON.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

type errorResponder struct {
	cfg ErrorHandlerConfig
	log *slog.Logger
}

func (e errorResponder) handle(ctx Context, err error) {
	r := ctx.Request()
	reqID := requestid.FromContext(r.Context())
	f := classify(err)

	e.log.LogAttrs(r.Context(), f.level(), "request error",
		logger.RequestID(reqID),
		logger.Error(err),
		slog.Int("status_code", f.status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
	)

	var (
		resp  Response
		event string
	)
	switch {
	case IsDataStar(r):
		if e.cfg.ErrorToast == nil {
			e.log.Warn("error toast not configured", logger.RequestID(reqID))
			return
		}
		// SSE streams always answer 200; the toast carries the failure.
		resp = Templ(
			e.cfg.ErrorToast(ErrorToastParams{Message: f.message, Type: f.kind(), RequestID: reqID}),
			WithTarget(e.cfg.ToastTarget),
			WithPatchMode(e.cfg.ToastMode),
		)
		event = "render_error_toast"
	case WantsJSON(r):
		resp = JSONError(err)
		event = "render_error_json"
	case e.cfg.ErrorPage == nil:
		http.Error(ctx.ResponseWriter(), f.message, f.status)
		return
	default:
		resp = TemplStatus(f.status, e.cfg.ErrorPage(ErrorPageParams{
			Error:      f.message,
			StatusCode: f.status,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		}))
		event = "render_error_page"
	}

	// Headers are gone by now, so a render failure can only be logged.
	if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
		e.log.Error("failed to render error response",
			logger.RequestID(reqID),
			logger.Error(renderErr),
			logger.Event(event),
		)
	}
}

// NewErrorHandler creates an ErrorHandler that answers in the client's
// format: a toast patch for DataStar, the JSON error envelope for JSON
// clients and the error page for everyone else. Without an ErrorPage the
// page falls back to plain text.
//
// Client errors (4xx) log at warn, everything else at error. Unclassified
// errors are shown as GenericErrorMessage.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}

	e := errorResponder{cfg: cfg, log: log.With(logger.Component("error_handler"))}
	return e.handle
}
