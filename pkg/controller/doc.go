// Package controller contains the HTTP middlewares and helper handlers used
// by the metrics server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request ID and a request-scoped logger to the context and logs access info.
//
// Provided helpers:
//   - RegisterPprof: Mounts the net/http/pprof handlers under /debug/pprof/.
//   - Healthz: Answers liveness probes.
package controller
