// Package fold implements code folding on top of package state.
//
// Folded ranges live in an immutable Store held by a state field. Every
// transaction remaps the store through its document changes, applies the
// FoldEffect and UnfoldEffect payloads it carries, and evicts folds whose
// interior now contains the primary caret. What can be folded is decided by
// an Oracle installed with LanguageFacet or OracleFacet; this package never
// inspects document text itself.
//
// The commands (FoldCode, UnfoldCode, FoldAll, UnfoldAll, ToggleFold) install
// the folding extension on first use, and Gutter derives per-line fold
// markers for the visible part of a document.
package fold
