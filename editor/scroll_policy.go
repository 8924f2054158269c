package editor

// ScrollPolicy decides whether the viewport may scroll away from the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport. The caret
	// stays where it is.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly scrolls only to keep the caret visible.
	ScrollFollowCursorOnly
)
