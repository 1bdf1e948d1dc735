// Package storage provides a thin client for the managed object store
// that hosts menu and gallery images.
//
// Uploads and deletes go over the store's HTTP API using the same service
// key as the REST data client. Deletes issued as compensation for a failed
// database write are best-effort: a failed compensating delete is logged
// and never turned into a request error, so an orphaned object is possible
// and cleaned up out of band.
package storage
