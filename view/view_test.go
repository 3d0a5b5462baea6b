package view_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobform"
	"github.com/dmitrymomot/jobform/handler"
	"github.com/dmitrymomot/jobform/pkg/environment"
	"github.com/dmitrymomot/jobform/view"
)

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func designer() jobform.FormState {
	return jobform.FormState{
		FullName:               "Jane Doe",
		Email:                  "jane@x.com",
		Phone:                  "5551234",
		Position:               jobform.PositionDesigner,
		Experience:             "5",
		PortfolioURL:           "https://jane.design",
		AdditionalSkills:       []jobform.Skill{jobform.SkillCSS},
		PreferredInterviewTime: "2024-01-01",
	}
}

func TestFormPage(t *testing.T) {
	t.Parallel()

	t.Run("renders every field with its label", func(t *testing.T) {
		t.Parallel()

		html := renderString(t, context.Background(), view.FormPage(view.FormPageParams{}))

		assert.Contains(t, html, "<title>Job Application</title>")
		assert.Contains(t, html, view.DataStarScriptURL)
		assert.Contains(t, html, `action="/applications"`)
		assert.Contains(t, html, `<div id="toast-container"></div>`)
		assert.Contains(t, html, `<div id="form-errors"></div>`)
		assert.Contains(t, html, `<div id="result"></div>`)
		for _, f := range []jobform.Field{
			jobform.FieldFullName, jobform.FieldEmail, jobform.FieldPhone, jobform.FieldPosition,
			jobform.FieldExperience, jobform.FieldPortfolioURL, jobform.FieldManagementExperience,
			jobform.FieldAdditionalSkills, jobform.FieldPreferredInterviewTime,
		} {
			assert.Contains(t, html, `id="field-`+f.String()+`"`)
			assert.Contains(t, html, f.Label())
		}
		for _, p := range jobform.Positions() {
			assert.Contains(t, html, `<option value="`+p.String()+`">`)
		}
		assert.NotContains(t, html, "env-banner")
		assert.Contains(t, html, `<input type="date" id="preferredInterviewTime" name="preferredInterviewTime"`)
		assert.NotContains(t, html, "datetime-local")
	})

	t.Run("hides fields the position does not use", func(t *testing.T) {
		t.Parallel()

		html := renderString(t, context.Background(), view.FormPage(view.FormPageParams{
			Form: jobform.FormState{Position: jobform.PositionManager},
		}))

		assert.Contains(t, html, `<option value="Manager" selected>`)
		assert.Contains(t, html, `id="field-portfolioURL" data-show="$position === &#39;Designer&#39;" style="display: none"`)
		assert.Contains(t, html, `id="field-managementExperience" data-show="$position === &#39;Manager&#39;">`)
		assert.Contains(t, html, `id="field-fullName">`)
	})

	t.Run("escapes submitted values", func(t *testing.T) {
		t.Parallel()

		s := designer()
		s.FullName = `<script>alert("x")</script>`
		html := renderString(t, context.Background(), view.FormPage(view.FormPageParams{Form: s}))

		assert.NotContains(t, html, "<script>alert")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("shows errors next to fields", func(t *testing.T) {
		t.Parallel()

		errs := jobform.ErrorMap{jobform.FieldEmail: jobform.MsgEmailInvalid}
		html := renderString(t, context.Background(), view.FormPage(view.FormPageParams{Errors: errs}))

		assert.Contains(t, html, `role="alert"`)
		assert.Contains(t, html, jobform.MsgEmailInvalid+`</p>`)
	})

	t.Run("environment banner outside production", func(t *testing.T) {
		t.Parallel()

		ctx := environment.WithContext(context.Background(), environment.Staging)
		html := renderString(t, ctx, view.FormPage(view.FormPageParams{}))
		assert.Contains(t, html, `<div class="env-banner">staging environment</div>`)

		ctx = environment.WithContext(context.Background(), environment.Production)
		html = renderString(t, ctx, view.FormPage(view.FormPageParams{}))
		assert.NotContains(t, html, "env-banner")
	})

	t.Run("seeds signals with live validation state", func(t *testing.T) {
		t.Parallel()

		html := renderString(t, context.Background(), view.Form(view.FormPageParams{Form: designer()}))
		assert.Contains(t, html, `&#34;valid&#34;:true`)
		assert.Contains(t, html, `&#34;additionalSkills&#34;:[&#34;CSS&#34;]`)

		html = renderString(t, context.Background(), view.Form(view.FormPageParams{}))
		assert.Contains(t, html, `&#34;valid&#34;:false`)
		assert.Contains(t, html, `&#34;additionalSkills&#34;:[]`)
		assert.Contains(t, html, `&#34;errors&#34;:{}`)
	})
}

func TestErrorList(t *testing.T) {
	t.Parallel()

	t.Run("form order", func(t *testing.T) {
		t.Parallel()

		html := renderString(t, context.Background(), view.ErrorList(jobform.ErrorMap{
			jobform.FieldPreferredInterviewTime: jobform.MsgPreferredInterviewTimeRequired,
			jobform.FieldFullName:               jobform.MsgFullNameRequired,
		}))

		assert.Equal(t,
			`<div id="form-errors" role="alert"><ul>`+
				`<li data-field="fullName">Full Name is required</li>`+
				`<li data-field="preferredInterviewTime">Preferred Interview Time is required</li>`+
				`</ul></div>`,
			html)
	})

	t.Run("empty clears the list", func(t *testing.T) {
		t.Parallel()

		html := renderString(t, context.Background(), view.ErrorList(nil))
		assert.Equal(t, `<div id="form-errors"></div>`, html)
	})
}

func TestSummary(t *testing.T) {
	t.Parallel()

	html := renderString(t, context.Background(), view.Summary(designer()))

	assert.Contains(t, html, `<section id="result"><h2>Job Application Form Summary</h2>`)
	assert.Contains(t, html, `<dt>Relevant Experience</dt><dd>5 years</dd>`)
	assert.Contains(t, html, `<dt>Portfolio URL</dt><dd>https://jane.design</dd>`)
	assert.NotContains(t, html, "Management Experience")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html := renderString(t, context.Background(), view.ErrorPage(handler.ErrorPageParams{
		Error:      "bad_request",
		StatusCode: http.StatusBadRequest,
		RequestID:  "req-1",
		RetryURL:   "/",
	}))

	assert.Contains(t, html, "<h1>400</h1>")
	assert.Contains(t, html, `<p class="error-message">bad_request</p>`)
	assert.Contains(t, html, `<a href="/">Try again</a>`)
	assert.Contains(t, html, "Request ID: req-1")
}

func TestErrorToast(t *testing.T) {
	t.Parallel()

	html := renderString(t, context.Background(), view.ErrorToast(handler.ErrorToastParams{
		Message: "<oops>",
		Type:    "warning",
	}))
	assert.Equal(t, `<div role="status" class="toast toast-warning">&lt;oops&gt;</div>`, html)

	html = renderString(t, context.Background(), view.ErrorToast(handler.ErrorToastParams{Message: "x"}))
	assert.Contains(t, html, "toast-error")
}

func TestErrorHandlerConfig(t *testing.T) {
	t.Parallel()

	cfg := view.ErrorHandlerConfig()
	assert.Equal(t, "#toast-container", cfg.ToastTarget)
	assert.Equal(t, handler.PatchPrepend, cfg.ToastMode)
	require.NotNil(t, cfg.ErrorPage)
	require.NotNil(t, cfg.ErrorToast)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	t.Parallel()

	err := view.Summary(designer()).Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "closed")
}
