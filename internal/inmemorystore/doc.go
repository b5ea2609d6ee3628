// Package inmemorystore provides a thread-safe, in-memory implementation
// of the nodestore.Store interface. Node state lives only as long as the run
// that created it.
package inmemorystore
