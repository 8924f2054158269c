// Package editor provides a Bubble Tea text editor component with code
// folding.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering of folded lines, the fold gutter, and host
// integration hooks (fold commands, clipboard, and change events).
package editor
