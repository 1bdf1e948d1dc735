// Package handler implements the HTTP endpoints of the hotel API.
//
// Handlers decode and minimally shape requests, delegate to the service
// layer, and write responses. Successful responses use a {data} envelope;
// errors use RFC 9457 Problem Details produced by MapServiceError, which
// is the single place service errors become HTTP status codes. Backend
// and infrastructure failures are logged server-side and surfaced as a
// generic 500 so query text never reaches a client.
package handler
