// Package storage declares the persistence contracts of the advisor: catalog
// sources, captured leads and the lead forwarding queue.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups everything a handle can do, inside or outside a transaction.
type AllStorage interface {
	CandidateStorage
	LeadStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle returned by a backend constructor.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error
	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that is committed when cb returns nil and
	// rolled back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
