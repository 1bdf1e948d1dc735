// Package middleware provides HTTP middleware for the hotel API.
//
// Middleware composes via Chain, applied left to right around a handler:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	)
//
// Auth validates bearer tokens and stores the claims in the request
// context; RequireAdmin and RequireWorker gate routes by role. RateLimit
// throttles the public endpoints per client IP. Idempotency deduplicates
// retried mutations keyed by the Idempotency-Key header.
package middleware
