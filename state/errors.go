package state

import "errors"

var (
	// ErrInvalidChange indicates that a transaction spec carried edits that do
	// not fit the document they address.
	ErrInvalidChange = errors.New("invalid change")

	// ErrFieldUpdate indicates that a field failed while computing its next
	// value. The transaction is discarded.
	ErrFieldUpdate = errors.New("field update failed")
)
