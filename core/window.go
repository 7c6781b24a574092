package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gl-tutorial/config"
)

func init() {
	runtime.LockOSThread()
}

// ContextCreationError reports that no window or OpenGL context could be
// created. Nothing can be rendered without one.
type ContextCreationError struct {
	Op  string
	Err error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("context creation: %s: %v", e.Op, e.Err)
}

func (e *ContextCreationError) Unwrap() error {
	return e.Err
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	// windowed placement restored when leaving fullscreen
	restoreX, restoreY, restoreW, restoreH int
}

// NewWindow creates the window described by cfg and makes its context
// current on the calling thread.
func NewWindow(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &ContextCreationError{Op: "initialize GLFW", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, boolToInt(cfg.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &ContextCreationError{Op: "create window", Err: err}
	}
	handle.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle:   handle,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Title:    cfg.Title,
		restoreW: cfg.Width,
		restoreH: cfg.Height,
	}
	window.restoreX, window.restoreY = handle.GetPos()

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

// RequestClose marks the window for closing; the event loop exits on its next
// check.
func (w *Window) RequestClose() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer. With vsync enabled this blocks until
// the next vertical blank.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Fullscreen reports whether the window currently sits on a monitor. The
// window manager can take it out of fullscreen without SetFullscreen.
func (w *Window) Fullscreen() bool {
	return w.Handle.GetMonitor() != nil
}

// SetFullscreen moves the window onto the primary monitor at its current video
// mode, or back to its last windowed placement.
func (w *Window) SetFullscreen(on bool) {
	if on == w.Fullscreen() {
		return
	}
	if on {
		w.restoreX, w.restoreY = w.Handle.GetPos()
		w.restoreW, w.restoreH = w.Handle.GetSize()
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		w.Handle.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		w.Handle.SetMonitor(nil, w.restoreX, w.restoreY, w.restoreW, w.restoreH, 0)
	}
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// KeyCallback receives GLFW key codes on press and release. Repeat events are
// not delivered.
type KeyCallback func(key int, pressed bool)

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			cb(int(key), true)
		case glfw.Release:
			cb(int(key), false)
		}
	})
}

// ResizeCallback receives the new framebuffer size in pixels.
type ResizeCallback func(width, height int)

func (w *Window) SetResizeCallback(cb ResizeCallback) {
	w.Handle.SetFramebufferSizeCallback(func(win *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
		cb(width, height)
	})
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
