package store

import "errors"

// Store domain errors
var (
	ErrStoreNotFound = errors.New("store not found")

	// ErrNoStoreForBranch is a distinct condition from an out-of-range clock
	// event: the employee's branch name matched no store at all.
	ErrNoStoreForBranch = errors.New("no store found for branch")
)
