// Package metrics exposes Prometheus metrics for the portfolio API.
//
// A Metrics value owns its own registry, so tests and multiple servers in one
// process do not collide. The registry carries the Go runtime and process
// collectors alongside the API metrics:
//
//   - sarefinport_http_requests_total: requests by method, route and status
//   - sarefinport_http_request_duration_seconds: latency by method and route
//   - sarefinport_errors_total: error responses by kind
//   - sarefinport_auth_failures_total: rejected credentials by reason
//   - sarefinport_contact_messages_total: accepted contact form submissions
//   - sarefinport_uptime_seconds: seconds since the process started
//
// Routes are labelled with the matched ServeMux pattern, never the raw path,
// so ids in URLs do not explode label cardinality.
package metrics
