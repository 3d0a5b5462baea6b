package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobform"
	"github.com/dmitrymomot/jobform/handler"
	"github.com/dmitrymomot/jobform/pkg/binder"
	"github.com/dmitrymomot/jobform/pkg/logger"
	"github.com/dmitrymomot/jobform/view"
)

// ApplicationViews holds the templ components rendered by the controller.
type ApplicationViews struct {
	FormPage  func(view.FormPageParams) templ.Component
	Form      func(view.FormPageParams) templ.Component
	ErrorList func(jobform.ErrorMap) templ.Component
	Summary   func(jobform.FormState) templ.Component
}

// DefaultViews returns the components of the view package.
func DefaultViews() *ApplicationViews {
	return &ApplicationViews{
		FormPage:  view.FormPage,
		Form:      view.Form,
		ErrorList: view.ErrorList,
		Summary:   view.Summary,
	}
}

// ApplicationController serves the application form, accepts submissions
// and answers live validation requests. It keeps no state between requests.
type ApplicationController struct {
	title             string
	views             *ApplicationViews
	errorHandler      handler.ErrorHandler[handler.Context]
	log               *slog.Logger
	submitMiddlewares []func(http.Handler) http.Handler
}

// ApplicationOption configures an ApplicationController.
type ApplicationOption func(*ApplicationController)

// WithSubmitMiddlewares wraps POST /applications only, e.g. with a rate
// limiter. Live validation is not affected.
func WithSubmitMiddlewares(mws ...func(http.Handler) http.Handler) ApplicationOption {
	return func(c *ApplicationController) {
		c.submitMiddlewares = append(c.submitMiddlewares, mws...)
	}
}

func NewApplicationController(
	title string,
	views *ApplicationViews,
	errorHandler handler.ErrorHandler[handler.Context],
	log *slog.Logger,
	opts ...ApplicationOption,
) *ApplicationController {
	if views == nil {
		views = DefaultViews()
	}
	if log == nil {
		log = slog.Default()
	}
	c := &ApplicationController{
		title:        title,
		views:        views,
		errorHandler: errorHandler,
		log:          log.With(logger.Component("application")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ApplicationController) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(c.form,
		handler.WithBinders[handler.Context, jobform.FormState](binder.Query()),
		handler.WithErrorHandler[handler.Context, jobform.FormState](c.errorHandler),
	))

	r.With(c.submitMiddlewares...).Post("/applications", handler.Wrap(c.submit,
		handler.WithBinders[handler.Context, jobform.FormState](
			handler.ReadSignals(), // DataStar @post
			binder.JSON(),         // API clients
			binder.Form(),         // plain form posts
		),
		handler.WithErrorHandler[handler.Context, jobform.FormState](c.errorHandler),
		handler.WithDecorators(timed[jobform.FormState](c.log, "submit")),
	))

	r.Post("/applications/validate", handler.Wrap(c.validate,
		handler.WithBinders[handler.Context, jobform.FormState](
			handler.ReadSignals(),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, jobform.FormState](c.errorHandler),
	))

	return r
}

// form renders the empty form, pre-filled from query parameters such as
// ?position=Designer.
func (c *ApplicationController) form(_ handler.Context, req jobform.FormState) handler.Response {
	return handler.Templ(c.views.FormPage(view.FormPageParams{
		Title: c.title,
		Form:  jobform.Normalize(req),
	}))
}

// SubmitResponse is the JSON body of an accepted application.
type SubmitResponse struct {
	Summary string                `json:"summary"`
	Lines   []jobform.SummaryLine `json:"lines"`
}

// LiveValidation is the signal patch sent while the applicant types. Every
// form field is present so stale messages are cleared on the client.
type LiveValidation struct {
	Errors map[jobform.Field]string `json:"errors"`
	Valid  bool                     `json:"valid"`
}

func newLiveValidation(errs jobform.ErrorMap) LiveValidation {
	fields := jobform.Fields()
	lv := LiveValidation{
		Errors: make(map[jobform.Field]string, len(fields)),
		Valid:  errs.IsValid(),
	}
	for _, f := range fields {
		lv.Errors[f] = errs.Get(f)
	}
	return lv
}

func (c *ApplicationController) submit(ctx handler.Context, req jobform.FormState) handler.Response {
	s := jobform.Normalize(req)
	errs := jobform.Validate(s)
	r := ctx.Request()

	if !errs.IsValid() {
		c.log.DebugContext(ctx, "application rejected",
			logger.Position(s.Position),
			logger.Fields(errs.Fields()...),
		)

		switch {
		case handler.IsDataStar(r):
			return handler.Signals(newLiveValidation(errs),
				handler.Patch(c.views.ErrorList(errs), handler.WithTarget(view.Selector(view.FormErrorsID))),
			)
		case handler.WantsJSON(r):
			return handler.JSON(toValidationError(errs))
		default:
			return handler.TemplStatus(http.StatusUnprocessableEntity,
				c.views.Form(view.FormPageParams{Form: s, Errors: errs}),
			)
		}
	}

	c.log.DebugContext(ctx, "application accepted", logger.Position(s.Position))

	switch {
	case handler.IsDataStar(r):
		return handler.Signals(newLiveValidation(errs),
			handler.Patch(c.views.ErrorList(errs), handler.WithTarget(view.Selector(view.FormErrorsID))),
			handler.Patch(c.views.Summary(s), handler.WithTarget(view.Selector(view.ResultID))),
		)
	case handler.WantsJSON(r):
		return handler.JSON(SubmitResponse{
			Summary: jobform.Summary(s),
			Lines:   jobform.SummaryLines(s),
		})
	default:
		return handler.Templ(c.views.Summary(s))
	}
}

func (c *ApplicationController) validate(ctx handler.Context, req jobform.FormState) handler.Response {
	s := jobform.Normalize(req)
	errs := jobform.Validate(s)
	c.log.DebugContext(ctx, "live validation",
		logger.Position(s.Position),
		logger.Fields(errs.Fields()...),
	)
	return handler.Signals(newLiveValidation(errs))
}

func toValidationError(errs jobform.ErrorMap) handler.ValidationError {
	ve := handler.NewValidationError()
	for _, f := range errs.Fields() {
		ve.Add(f.String(), errs.Get(f))
	}
	return ve
}

// timed logs how long the wrapped handler took to build its response.
func timed[R any](log *slog.Logger, event string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "handler finished",
				logger.Event(event),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
