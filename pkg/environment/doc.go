// Package environment names the deployment environment the process runs in
// and carries it through context.Context.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//	if environment.FromContext(ctx).IsProduction() { ... }
package environment
