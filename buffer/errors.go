package buffer

import "errors"

// Change validation errors
var (
	// ErrEditOutOfRange indicates that an edit addresses offsets outside the document.
	ErrEditOutOfRange = errors.New("edit out of document range")

	// ErrEditInverted indicates that an edit's To precedes its From.
	ErrEditInverted = errors.New("edit range is inverted")

	// ErrEditOverlap indicates that two edits of one step touch overlapping ranges.
	ErrEditOverlap = errors.New("edits overlap")

	// ErrLengthMismatch indicates that a change set was applied to a document of
	// a different length than the one it was built for.
	ErrLengthMismatch = errors.New("change set does not match document length")
)
