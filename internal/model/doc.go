// Package model defines the domain types shared across the API layers.
//
// Types here mirror the persisted schema one-to-one: a struct field exists
// for every column, json tags match the column names, and secrets (password
// hashes) are excluded from serialization with json:"-".
//
// The package also defines the RFC 9457 Problem Details error envelope used
// by every handler, so error responses are consistent across the API.
package model
