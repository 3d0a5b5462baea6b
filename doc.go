// Package jobform validates and summarises job applications.
//
// The package is a small, pure rule engine. A FormState snapshot goes in, an
// ErrorMap (field → message) comes out; an empty map means the application is
// complete and Summary can format it for display. Nothing is stored and
// nothing is sent anywhere: rendering, input handling and submission belong
// to the caller.
//
// # Relevance
//
// Some fields only matter for certain positions. Relevance is a single lookup
// from Position to the fields it activates, consulted by both Validate and
// Summary:
//
//	Developer  → experience
//	Designer   → experience, portfolioURL
//	Manager    → managementExperience
//
// Inactive fields are never validated and never summarised, even when they
// still carry values from a previously selected position.
//
// # Usage
//
//	state := jobform.FormState{
//		FullName:               "Jane Doe",
//		Email:                  "jane@x.com",
//		Phone:                  "5551234",
//		Position:               jobform.PositionDeveloper,
//		Experience:             "5",
//		AdditionalSkills:       []jobform.Skill{jobform.SkillJavaScript},
//		PreferredInterviewTime: "2024-01-01",
//	}
//
//	if errs := jobform.Validate(state); !errs.IsValid() {
//		for _, f := range errs.Fields() {
//			fmt.Printf("%s: %s\n", f, errs[f])
//		}
//		return
//	}
//	fmt.Println(jobform.Summary(state))
//
// # Messages
//
// Messages are fixed English strings exposed as Msg* constants. Each field
// carries at most one message: a missing value reports "required", a present
// but malformed value reports the format message.
//
// # Concurrency
//
// Validate, Summary, SummaryLines and Normalize are pure functions over
// values and are safe for concurrent use.
//
// The HTTP collaborator that renders the form and calls into this package
// lives in the controller package; cmd/jobform wires it into a server.
package jobform
