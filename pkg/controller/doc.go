// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins and handles OPTIONS preflight.
//   - WithRequestID: Reads or generates the X-Request-Id of a request.
//   - WithLogger: Attaches a request-scoped logger to the context and logs access info.
//   - WithRecover: Turns handler panics into 500 responses.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under /debug/pprof/.
package controller
