// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown on context cancellation or SIGINT/SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen failures with ErrStart; Shutdown wraps failures with
// ErrShutdown. HealthCheckHandler serves liveness and readiness probes.
package httpserver
