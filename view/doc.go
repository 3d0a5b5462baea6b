// Package view renders the job application pages as templ components.
//
// Components are plain templ.ComponentFunc values, so they plug into
// handler.Templ responses and handler.Signals patches alike. Every
// fragment carries a stable element id (FormErrorsID, ResultID,
// ToastContainerID) that DataStar patches target.
//
//	r.Get("/", handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
//		return handler.Templ(view.FormPage(view.FormPageParams{Title: "Apply"}))
//	}))
//
// All user supplied text is escaped with templ.EscapeString.
package view
