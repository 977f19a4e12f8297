// Package http implements the HTTP transport layer of the application.
//
// It exposes the route table, the landing page and link redirect handlers,
// and the middleware pipeline wrapped around them. Cross-cutting concerns
// such as request tracing, access logging, cross-origin policy and request
// timeouts are handled in this package.
package http
