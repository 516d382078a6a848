// Package clientip resolves the client address of an HTTP request from
// trusted proxy headers, falling back to RemoteAddr, and exposes it through
// the request context and log records.
package clientip
