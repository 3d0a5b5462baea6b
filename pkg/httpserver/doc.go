// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run binds the listener, serves until ctx is cancelled, SIGINT or SIGTERM
// arrives, or Shutdown is called, and then waits up to the shutdown timeout
// for in-flight requests. Start hooks receive the bound address, which makes
// ":0" usable in tests.
//
// Config carries `env` tags (HTTP_ADDR, HTTP_READ_TIMEOUT,
// HTTP_READ_HEADER_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
// HTTP_SHUTDOWN_TIMEOUT) for use with the config package.
package httpserver
