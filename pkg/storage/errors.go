package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by operations that need the root handle when
	// called on a transactional one.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on the root handle.
	ErrNotInTx = errors.New("not in tx")
)
