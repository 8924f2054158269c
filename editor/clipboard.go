package editor

// Clipboard backs the copy, cut and paste bindings. Read and write errors
// leave the document untouched.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
