// Package bridge owns the client-facing surface of the daemon.
//
// Ownership boundary:
// - HTTP server hosting the WebSocket upgrade endpoint
// - per-connection sessions: pipelined read loop, serialized frame writes
// - operational routes (health, ready, metrics)
package bridge
