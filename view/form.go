package view

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/jobform"
	"github.com/dmitrymomot/jobform/pkg/environment"
)

// DataStarScriptURL is the client bundle loaded by FormPage.
const DataStarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// FormPageParams contains data for rendering the application form page.
type FormPageParams struct {
	Title       string
	Form        jobform.FormState
	Errors      jobform.ErrorMap
	ActionURL   string // default "/applications"
	ValidateURL string // default "/applications/validate"
}

// pageSignals seeds the DataStar store: the form fields plus the live
// validation state patched by the validate endpoint.
type pageSignals struct {
	jobform.FormState
	Errors jobform.ErrorMap `json:"errors"`
	Valid  bool             `json:"valid"`
}

// FormPage renders the full application page. Non-production environments
// get a banner naming the environment.
func FormPage(p FormPageParams) templ.Component {
	if p.Title == "" {
		p.Title = "Job Application"
	}
	if p.ActionURL == "" {
		p.ActionURL = "/applications"
	}
	if p.ValidateURL == "" {
		p.ValidateURL = "/applications/validate"
	}

	return render(func(ctx context.Context, b *strings.Builder) error {
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		text(b, p.Title)
		b.WriteString(`</title><script type="module"`)
		attr(b, "src", DataStarScriptURL)
		b.WriteString(`></script></head><body>`)

		if env := environment.FromContext(ctx); env != "" && env != environment.Production {
			b.WriteString(`<div class="env-banner">`)
			text(b, env.String()+" environment")
			b.WriteString(`</div>`)
		}

		b.WriteString(`<main><h1>`)
		text(b, p.Title)
		b.WriteString(`</h1>`)
		b.WriteString(`<div id="` + ToastContainerID + `"></div>`)
		writeErrorList(b, p.Errors)
		if err := writeForm(b, p); err != nil {
			return err
		}
		b.WriteString(`<div id="` + ResultID + `"></div>`)
		b.WriteString(`</main></body></html>`)
		return nil
	})
}

// Form renders the application form alone, for re-rendering it with the
// submitted values and their errors.
func Form(p FormPageParams) templ.Component {
	if p.ActionURL == "" {
		p.ActionURL = "/applications"
	}
	if p.ValidateURL == "" {
		p.ValidateURL = "/applications/validate"
	}
	return render(func(_ context.Context, b *strings.Builder) error {
		writeErrorList(b, p.Errors)
		return writeForm(b, p)
	})
}

func writeForm(b *strings.Builder, p FormPageParams) error {
	signals := pageSignals{FormState: p.Form, Errors: p.Errors, Valid: jobform.Validate(p.Form).IsValid()}
	if signals.AdditionalSkills == nil {
		signals.AdditionalSkills = []jobform.Skill{}
	}
	if signals.Errors == nil {
		signals.Errors = jobform.ErrorMap{}
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("encode form signals: %w", err)
	}

	b.WriteString(`<form id="application" method="post" novalidate`)
	attr(b, "action", p.ActionURL)
	attr(b, "data-signals", string(data))
	attr(b, "data-on:submit__prevent", "@post('"+p.ActionURL+"')")
	attr(b, "data-on:input__debounce.300ms", "@post('"+p.ValidateURL+"')")
	b.WriteByte('>')

	s := p.Form
	inputField(b, p, jobform.FieldFullName, "text", s.FullName)
	inputField(b, p, jobform.FieldEmail, "email", s.Email)
	inputField(b, p, jobform.FieldPhone, "tel", s.Phone)
	positionField(b, p)
	inputField(b, p, jobform.FieldExperience, "number", s.Experience)
	inputField(b, p, jobform.FieldPortfolioURL, "url", s.PortfolioURL)
	textareaField(b, p, jobform.FieldManagementExperience, s.ManagementExperience)
	skillsField(b, p)
	inputField(b, p, jobform.FieldPreferredInterviewTime, "date", s.PreferredInterviewTime)

	b.WriteString(`<button type="submit">Submit</button></form>`)
	return nil
}

// openField starts the wrapper of a field. Fields that depend on the
// position are shown by DataStar only for the positions they apply to.
func openField(b *strings.Builder, p FormPageParams, f jobform.Field) {
	b.WriteString(`<div class="field"`)
	attr(b, "id", "field-"+f.String())
	if show := showWhen(f); show != "" {
		attr(b, "data-show", show)
		if !jobform.Relevant(p.Form.Position, f) {
			attr(b, "style", "display: none")
		}
	}
	b.WriteByte('>')
}

func closeField(b *strings.Builder, p FormPageParams, f jobform.Field) {
	b.WriteString(`<p class="field-error"`)
	attr(b, "id", "error-"+f.String())
	attr(b, "data-text", "$errors."+f.String()+" || ''")
	b.WriteByte('>')
	text(b, p.Errors.Get(f))
	b.WriteString(`</p></div>`)
}

func label(b *strings.Builder, f jobform.Field) {
	b.WriteString(`<label`)
	attr(b, "for", f.String())
	b.WriteByte('>')
	text(b, f.Label())
	b.WriteString(`</label>`)
}

func inputField(b *strings.Builder, p FormPageParams, f jobform.Field, typ, value string) {
	openField(b, p, f)
	label(b, f)
	b.WriteString(`<input`)
	attr(b, "type", typ)
	attr(b, "id", f.String())
	attr(b, "name", f.String())
	attr(b, "value", value)
	attr(b, "data-bind", f.String())
	b.WriteByte('>')
	closeField(b, p, f)
}

func textareaField(b *strings.Builder, p FormPageParams, f jobform.Field, value string) {
	openField(b, p, f)
	label(b, f)
	b.WriteString(`<textarea`)
	attr(b, "id", f.String())
	attr(b, "name", f.String())
	attr(b, "data-bind", f.String())
	b.WriteByte('>')
	text(b, value)
	b.WriteString(`</textarea>`)
	closeField(b, p, f)
}

func positionField(b *strings.Builder, p FormPageParams) {
	f := jobform.FieldPosition
	openField(b, p, f)
	label(b, f)
	b.WriteString(`<select`)
	attr(b, "id", f.String())
	attr(b, "name", f.String())
	attr(b, "data-bind", f.String())
	b.WriteString(`><option value="">Select a position</option>`)
	for _, pos := range jobform.Positions() {
		b.WriteString(`<option`)
		attr(b, "value", pos.String())
		if pos == p.Form.Position {
			b.WriteString(` selected`)
		}
		b.WriteByte('>')
		text(b, pos.String())
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select>`)
	closeField(b, p, f)
}

func skillsField(b *strings.Builder, p FormPageParams) {
	f := jobform.FieldAdditionalSkills
	openField(b, p, f)
	b.WriteString(`<fieldset><legend>`)
	text(b, f.Label())
	b.WriteString(`</legend>`)
	for _, skill := range jobform.Skills() {
		b.WriteString(`<label><input type="checkbox"`)
		attr(b, "name", f.String())
		attr(b, "value", skill.String())
		attr(b, "data-bind", f.String())
		if p.Form.HasSkill(skill) {
			b.WriteString(` checked`)
		}
		b.WriteByte('>')
		text(b, skill.String())
		b.WriteString(`</label>`)
	}
	b.WriteString(`</fieldset>`)
	closeField(b, p, f)
}

// showWhen returns the data-show expression for a position dependent field,
// or "" for fields every position uses.
func showWhen(f jobform.Field) string {
	var conds []string
	for _, pos := range jobform.Positions() {
		if jobform.Relevant(pos, f) {
			conds = append(conds, "$position === '"+pos.String()+"'")
		}
	}
	if len(conds) == len(jobform.Positions()) {
		return ""
	}
	return strings.Join(conds, " || ")
}
