// Package http implements the REST transport of the credential service.
//
// It wires the chi router, the register/login/me/health/version handlers and
// the middleware chain: trace IDs, access logging, panic recovery, request
// timeouts, CORS, security headers and gzip. Service errors are translated to
// HTTP statuses by an ordered table; the client only sees a short JSON
// string while details go to the request-scoped log.
package http
