// Package app drives one tutorial lesson: it owns the shader program, meshes,
// texture, frame clock and input state, and renders a frame per Tick.
package app

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"gl-tutorial/input"
	"gl-tutorial/render"
)

type State int

const (
	Uninitialized State = iota
	Running
	Closing
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrNotRunning = errors.New("app is not running")

// Surface is the window side of the render loop.
type Surface interface {
	// SwapBuffers presents the frame, blocking on vsync if enabled.
	SwapBuffers()
	Fullscreen() bool
	SetFullscreen(on bool)
	// RequestClose asks the host event loop to stop.
	RequestClose()
}

type Options struct {
	Log      *zap.Logger
	Time     render.TimeSource
	Bindings input.Bindings
	Width    int
	Height   int

	// Fullscreen is the surface's initial fullscreen state.
	Fullscreen bool
}

// App is the whole application state of one running lesson. All methods must
// be called from the thread that owns the graphics context.
type App struct {
	log     *zap.Logger
	backend render.Backend
	surface Surface
	lesson  Lesson
	state   State

	program *render.Program
	texture *render.Texture
	objects []*Object

	clock      *render.FrameClock
	input      *input.State
	width      int
	height     int
	fullscreen bool
	frames     uint64
}

// New compiles the lesson program, uploads its static geometry and texture,
// and sets the initial uniforms. On failure everything built so far is
// released and the app is left Uninitialized.
func New(backend render.Backend, surface Surface, lesson Lesson, opts Options) (*App, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Time == nil {
		opts.Time = render.SystemTime()
	}
	if opts.Bindings == nil {
		opts.Bindings = input.DefaultBindings()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", opts.Width, opts.Height)
	}

	enabled := append([]input.Action(nil), lesson.Enabled...)
	if opts.Fullscreen {
		enabled = append(enabled, input.ToggleFullscreen)
	}

	a := &App{
		log:        opts.Log.With(zap.String("lesson", lesson.Name)),
		backend:    backend,
		surface:    surface,
		lesson:     lesson,
		input:      input.NewState(opts.Bindings, enabled...),
		width:      opts.Width,
		height:     opts.Height,
		fullscreen: opts.Fullscreen,
	}
	if err := a.init(); err != nil {
		a.release()
		return nil, err
	}

	a.clock = render.NewFrameClock(opts.Time)
	a.state = Running
	a.log.Info("Lesson initialized",
		zap.Int("objects", len(a.objects)),
		zap.Int("width", a.width),
		zap.Int("height", a.height))
	return a, nil
}

func (a *App) init() error {
	program, err := render.NewProgram(a.backend, a.lesson.VertexShader, a.lesson.FragmentShader)
	if err != nil {
		return fmt.Errorf("compile program: %w", err)
	}
	a.program = program

	for _, desc := range a.lesson.Objects {
		if desc.Textured && a.texture == nil {
			if a.lesson.Texture == nil {
				return fmt.Errorf("object %q is textured but the lesson has no texture", desc.Name)
			}
			tex, err := a.lesson.Texture(a.backend)
			if err != nil {
				return err
			}
			a.texture = tex
			a.log.Debug("Texture loaded",
				zap.String("path", tex.Path),
				zap.Int("width", tex.Width),
				zap.Int("height", tex.Height))
		}

		mesh, err := render.NewMesh(a.backend, desc.Geometry)
		if err != nil {
			return fmt.Errorf("object %q: %w", desc.Name, err)
		}
		obj := &Object{
			Name:   desc.Name,
			Mesh:   mesh,
			Offset: desc.Offset,
			Spin:   desc.Spin,
		}
		if desc.Textured {
			obj.Texture = a.texture
		}
		a.objects = append(a.objects, obj)
	}

	a.program.Use()
	if err := a.program.SetMat4(render.UniformProjection, a.Projection()); err != nil {
		return err
	}
	view := mgl32.LookAtV(a.lesson.eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if err := a.program.SetMat4(render.UniformView, view); err != nil {
		return err
	}
	if a.texture != nil {
		if err := a.program.SetInt(render.UniformTexture, 0); err != nil {
			return err
		}
	}
	if a.lesson.Lighting {
		if err := a.program.SetVec3(render.UniformLightDirection, a.lesson.LightDirection.Normalize()); err != nil {
			return err
		}
		if err := a.program.SetBool(render.UniformEnableLighting, a.input.Active(input.ToggleLighting)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) State() State {
	return a.state
}

func (a *App) Objects() []*Object {
	return a.objects
}

func (a *App) Program() *render.Program {
	return a.program
}

func (a *App) Input() *input.State {
	return a.input
}

// Frames is the number of frames presented so far.
func (a *App) Frames() uint64 {
	return a.frames
}

// Projection is the perspective matrix for the current framebuffer aspect.
func (a *App) Projection() mgl32.Mat4 {
	return mgl32.Perspective(FieldOfView, float32(a.width)/float32(a.height), NearPlane, FarPlane)
}

// Tick renders one frame. Any error is fatal to the loop.
func (a *App) Tick() error {
	if a.state != Running {
		return ErrNotRunning
	}

	a.update(a.clock.Advance())

	bg := a.lesson.clearColor()
	a.backend.Viewport(a.width, a.height)
	a.backend.ClearColor(bg[0], bg[1], bg[2], bg[3])
	a.backend.Clear()

	a.program.Use()
	if a.lesson.Lighting {
		if err := a.program.SetBool(render.UniformEnableLighting, a.input.Active(input.ToggleLighting)); err != nil {
			return fmt.Errorf("frame %d: %w", a.frames, err)
		}
	}
	for _, obj := range a.objects {
		if err := a.program.SetMat4(render.UniformModel, obj.Model()); err != nil {
			return fmt.Errorf("frame %d: %w", a.frames, err)
		}
		if err := obj.Mesh.Bind(a.program); err != nil {
			return fmt.Errorf("frame %d: object %q: %w", a.frames, obj.Name, err)
		}
		if obj.Texture != nil {
			if err := obj.Texture.Bind(0); err != nil {
				return fmt.Errorf("frame %d: object %q: %w", a.frames, obj.Name, err)
			}
		}
		obj.Mesh.Draw()
	}

	a.surface.SwapBuffers()
	a.frames++
	return nil
}

func (a *App) update(dt float32) {
	spinning := !a.lesson.Interactive || a.input.Active(input.ToggleAutoRotate)
	var manual mgl32.Vec3
	if a.lesson.Interactive {
		step := a.lesson.ManualSpeed * dt
		if a.input.Active(input.RotateRight) {
			manual[1] += step
		}
		if a.input.Active(input.RotateLeft) {
			manual[1] -= step
		}
		if a.input.Active(input.RotateUp) {
			manual[0] -= step
		}
		if a.input.Active(input.RotateDown) {
			manual[0] += step
		}
	}
	for _, obj := range a.objects {
		if spinning {
			obj.advance(dt)
		}
		obj.Angles = obj.Angles.Add(manual)
	}

	if actual := a.surface.Fullscreen(); actual != a.fullscreen {
		a.fullscreen = actual
		a.input.Set(input.ToggleFullscreen, actual)
		a.log.Info("Fullscreen changed by window", zap.Bool("fullscreen", actual))
	}
	if want := a.input.Active(input.ToggleFullscreen); want != a.fullscreen {
		a.surface.SetFullscreen(want)
		a.fullscreen = want
		a.log.Info("Fullscreen toggled", zap.Bool("fullscreen", want))
	}
}

// Reshape adapts the viewport and projection to a new framebuffer size. Only
// projection_matrix is uploaded. A zero-sized framebuffer (minimized window)
// is ignored.
func (a *App) Reshape(width, height int) error {
	if a.state != Running {
		return ErrNotRunning
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	a.width, a.height = width, height
	a.backend.Viewport(width, height)
	a.program.Use()
	if err := a.program.SetMat4(render.UniformProjection, a.Projection()); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	a.log.Debug("Reshaped", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// KeyDown forwards a key press. The exit key moves the app to Closing and
// asks the surface to close.
func (a *App) KeyDown(key input.Key) {
	if a.state != Running {
		return
	}
	a.input.KeyDown(key)
	if a.input.ExitRequested() {
		a.log.Info("Exit requested")
		a.state = Closing
		a.surface.RequestClose()
	}
}

func (a *App) KeyUp(key input.Key) {
	if a.state != Running {
		return
	}
	if action := a.input.KeyUp(key); action.Toggle() {
		a.log.Info("Toggled", zap.Stringer("action", action), zap.Bool("on", a.input.Active(action)))
	}
}

// Close releases every mesh, the texture and the program, each exactly once,
// and moves the app to Terminated. It is safe to call more than once.
func (a *App) Close() {
	if a.state == Terminated {
		return
	}
	a.state = Closing
	a.release()
	a.state = Terminated
	a.log.Info("Lesson terminated", zap.Uint64("frames", a.frames))
}

func (a *App) release() {
	for _, obj := range a.objects {
		obj.Mesh.Release()
	}
	if a.texture != nil {
		a.texture.Release()
	}
	if a.program != nil {
		a.program.Release()
	}
}
