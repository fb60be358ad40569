// Package httpapi exposes episodes and clip records over HTTP.
//
// Routes are served by a gorilla/mux router wrapped in gorilla/handlers
// recovery, access logging, and optional CORS. Every request receives a
// uuid correlation ID (echoed in X-Request-Id) and a tenant resolved from a
// configured bearer token, or from X-Tenant-Id when no tokens are configured.
// Errors are classified with services.Kind and mapped onto 400, 401, 404, or
// 500 responses with a JSON body.
package httpapi
