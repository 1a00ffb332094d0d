// Package httputil provides HTTP plumbing for the feed client.
//
// # Overview
//
// This package provides the transport layer used by the feed client:
//
//   - [NewClient]: an http.Client with gzip negotiation, a request timeout
//     and an opt-in switch for skipping TLS verification
//   - [BasicAuth]: the Authorization header value for account credentials
//   - [Get]: one GET request whose body is read fully into memory
//
// # Retries
//
// Nothing here retries. A failed request is reported to the caller at once;
// the API's own 304 handling is what saves bandwidth on repeated calls.
//
// # Configuration
//
// Default settings:
//
//   - Timeout: 30 seconds
//   - TLS verification: on
//   - Compression: gzip, decoded transparently
package httputil
