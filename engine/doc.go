// Package engine is the host boundary of numtrace: it turns a method-tagged
// Request into a JSON-safe Response carrying the result view and the trace.
//
// The engine adds what the algorithm packages deliberately leave out: a run
// ID (UUID v4) per computation, structured logging through the zerolog
// logger stored in the context, cancellation at the boundary, aggregated
// request validation, and concurrent batch execution (RunAll).
//
//	resp, err := engine.Run(ctx, engine.NewRequest(engine.MethodLU))
//	for _, line := range resp.Lines() {
//		fmt.Println(line)
//	}
package engine
