package view

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/jobform/handler"
)

// ErrorPage renders a standalone error page for handler.NewErrorHandler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return render(func(_ context.Context, b *strings.Builder) error {
		code := strconv.Itoa(p.StatusCode)
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Error `)
		b.WriteString(code)
		b.WriteString(`</title></head><body><main class="error-page"><h1>`)
		b.WriteString(code)
		b.WriteString(`</h1><p class="error-message">`)
		text(b, p.Error)
		b.WriteString(`</p>`)
		if p.RetryURL != "" {
			b.WriteString(`<a`)
			attr(b, "href", p.RetryURL)
			b.WriteString(`>Try again</a>`)
		}
		if p.RequestID != "" {
			b.WriteString(`<p class="request-id">Request ID: `)
			text(b, p.RequestID)
			b.WriteString(`</p>`)
		}
		b.WriteString(`</main></body></html>`)
		return nil
	})
}

// ErrorToast renders a toast prepended to the ToastContainerID element.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return render(func(_ context.Context, b *strings.Builder) error {
		typ := p.Type
		if typ == "" {
			typ = "error"
		}
		b.WriteString(`<div role="status"`)
		attr(b, "class", "toast toast-"+typ)
		if p.RequestID != "" {
			attr(b, "data-request-id", p.RequestID)
		}
		b.WriteByte('>')
		text(b, p.Message)
		b.WriteString(`</div>`)
		return nil
	})
}

// ErrorHandlerConfig wires ErrorPage and ErrorToast into
// handler.NewErrorHandler.
func ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:   ErrorPage,
		ErrorToast:  ErrorToast,
		ToastTarget: Selector(ToastContainerID),
		ToastMode:   handler.PatchPrepend,
	}
}
