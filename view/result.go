package view

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/jobform"
)

// ErrorList renders the failing fields in form order inside the
// FormErrorsID container. An empty map renders the empty container, which
// clears a previously patched list.
func ErrorList(errs jobform.ErrorMap) templ.Component {
	return render(func(_ context.Context, b *strings.Builder) error {
		writeErrorList(b, errs)
		return nil
	})
}

func writeErrorList(b *strings.Builder, errs jobform.ErrorMap) {
	if errs.IsValid() {
		b.WriteString(`<div id="` + FormErrorsID + `"></div>`)
		return
	}
	b.WriteString(`<div id="` + FormErrorsID + `" role="alert"><ul>`)
	for _, f := range errs.Fields() {
		b.WriteString(`<li`)
		attr(b, "data-field", f.String())
		b.WriteByte('>')
		text(b, errs.Get(f))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></div>`)
}

// Summary renders the summary of an accepted application inside the
// ResultID container.
func Summary(s jobform.FormState) templ.Component {
	return render(func(_ context.Context, b *strings.Builder) error {
		b.WriteString(`<section id="` + ResultID + `"><h2>`)
		text(b, jobform.SummaryTitle)
		b.WriteString(`</h2><dl>`)
		for _, l := range jobform.SummaryLines(s) {
			b.WriteString(`<dt>`)
			text(b, l.Label)
			b.WriteString(`</dt><dd>`)
			text(b, l.Value)
			b.WriteString(`</dd>`)
		}
		b.WriteString(`</dl></section>`)
		return nil
	})
}
