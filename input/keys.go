package input

// Key is a keyboard key code. Values match GLFW key codes, so a GLFW key can
// be converted directly.
type Key int

const (
	KeySpace  Key = 32
	KeyA      Key = 65
	KeyD      Key = 68
	KeyF      Key = 70
	KeyL      Key = 76
	KeyS      Key = 83
	KeyW      Key = 87
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265
)
