package editor

// ScrollPolicy controls whether the viewport may move away from the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll without moving the
	// cursor.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the wheel; only cursor moves scroll.
	ScrollFollowCursorOnly
)
