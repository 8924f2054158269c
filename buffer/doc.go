// Package buffer implements the immutable document model used by furl.
//
// Positions are rune offsets into the document; a line break counts as one
// rune. Row/column coordinates (Pos) are 0-based and exist for screen mapping.
// Documents never change in place: a ChangeSet applied to a Doc yields a new
// Doc, and the same ChangeSet maps positions from the old document to the new
// one.
package buffer
