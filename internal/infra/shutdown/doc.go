// Package shutdown provides graceful shutdown for twokey.
//
// The CLI cancels its command context on SIGINT or SIGTERM and runs the
// registered hooks, such as saving REPL history, before exiting:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.Context(context.Background())
//	defer stop()
//	h.OnShutdown(saveHistory)
//	defer h.Shutdown()
package shutdown
