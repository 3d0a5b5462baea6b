// Package environment parses the configured application environment and
// carries it through request contexts.
//
//	env := environment.Parse(cfg.Env) // "prod" -> environment.Production
//	r.Use(environment.Middleware(env))
//
//	if !environment.IsProduction(ctx) {
//		// render the development banner
//	}
//
// Missing values yield the zero Environment ("").
package environment
