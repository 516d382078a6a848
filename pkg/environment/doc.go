// Package environment names the deployment stage (development, staging,
// production) and carries it through context.Context, HTTP requests and logs.
//
// The HTTP layer uses it to decide how much detail a rejection body may
// expose: decoder messages are shown in development and hidden otherwise.
//
//	env, err := environment.Parse(cfg.Env)
//	handler = environment.Middleware(env)(handler)
//	if environment.FromContext(r.Context()).Verbose() { ... }
package environment
