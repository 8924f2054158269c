// Package state implements immutable editor state and the transactions that
// move it forward.
//
// A State holds a document, a selection and a resolved configuration. The
// configuration is built from extensions: fields carry values that are
// recomputed on every transaction, facets collect values contributed by
// several extensions. Transactions carry typed effects, small tagged payloads
// that fields consume once.
//
// State values are never modified after they are published. All updates are
// synchronous; a Transaction either produces a complete new State or an error.
package state
