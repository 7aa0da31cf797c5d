// Package http implements the REST transport of the cpoint server.
//
// It wires the chi router under /api, the request gate that resolves
// bearer tokens to users, the authentication rate limiter and the
// cross-cutting middleware (tracing, access logging, panic recovery,
// compression, body limits) that run before requests reach the service
// layer.
package http
