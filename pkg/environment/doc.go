// Package environment carries the deployment environment (development,
// staging, production) through context.Context.
//
// APP_ENV values are mapped with Parse and attached to every request by
// Middleware:
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//
//	if environment.IsDevelopment(ctx) {
//		// show internal error details
//	}
package environment
