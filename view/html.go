package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Element ids targeted by DataStar patches.
const (
	FormErrorsID     = "form-errors"
	ResultID         = "result"
	ToastContainerID = "toast-container"
)

// Selector returns the CSS id selector for an element id.
func Selector(id string) string {
	return "#" + id
}

// render builds the markup in memory and writes it in one call, so a
// partially rendered fragment never reaches the client. An error from fn
// aborts the render before anything is written.
func render(fn func(ctx context.Context, b *strings.Builder) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := fn(ctx, &b); err != nil {
			return err
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func text(b *strings.Builder, s string) {
	b.WriteString(templ.EscapeString(s))
}

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteByte('"')
}
