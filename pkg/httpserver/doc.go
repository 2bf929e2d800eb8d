// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown when the caller's context ends.
//
// Configuration comes either from functional options (WithAddr,
// WithShutdownTimeout, WithLogger, ...) or from Config, which is loaded from
// HTTP_* environment variables by pkg/config:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Errors are wrapped with ErrStart or ErrShutdown so callers can use errors.Is.
// HealthHandler serves liveness and readiness probes.
package httpserver
