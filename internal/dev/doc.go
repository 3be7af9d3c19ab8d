// Package dev implements the development server.
//
// The server resolves the project's route tree on startup and serves
// it over HTTP. A recursive filesystem watcher re-resolves the tree
// whenever a route file changes, and connected WebSocket clients
// receive either the fresh tree or the resolution error.
//
// Endpoints:
//
//	GET /routes   current route tree as JSON
//	GET /healthz  liveness probe with client count
//	GET /metrics  Prometheus metrics
//	GET /ws       WebSocket stream of route updates
package dev
