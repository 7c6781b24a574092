package app_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gl-tutorial/app"
	"gl-tutorial/geometry"
	"gl-tutorial/input"
	"gl-tutorial/lessons"
	"gl-tutorial/render"
	"gl-tutorial/render/rendertest"
)

type fakeSurface struct {
	swaps          int
	fullscreen     bool
	fullscreenSets int
	closeRequested bool
}

func (s *fakeSurface) SwapBuffers() { s.swaps++ }
func (s *fakeSurface) Fullscreen() bool { return s.fullscreen }
func (s *fakeSurface) RequestClose() { s.closeRequested = true }

func (s *fakeSurface) SetFullscreen(on bool) {
	s.fullscreen = on
	s.fullscreenSets++
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }
func (f *fakeTime) Advance(d time.Duration) { f.now = f.now.Add(d) }

func whitePixel(b render.Backend) (*render.Texture, error) {
	return render.NewTextureFromPixels(b, 1, 1, []byte{255, 255, 255, 255})
}

type fixture struct {
	rec     *rendertest.Recorder
	surface *fakeSurface
	clock   *fakeTime
	app     *app.App
}

func newFixture(t *testing.T, lesson app.Lesson) *fixture {
	t.Helper()
	f := &fixture{
		rec:     rendertest.NewRecorder(),
		surface: &fakeSurface{},
		clock:   &fakeTime{now: time.Unix(1000, 0)},
	}
	a, err := app.New(f.rec, f.surface, lesson, app.Options{Time: f.clock, Width: 1280, Height: 720})
	require.NoError(t, err)
	f.app = a
	return f
}

func singleTriangle() app.Lesson {
	l := lessons.WhiteShapes()
	l.Objects = []app.ObjectDesc{{Name: "triangle", Geometry: geometry.Triangle()}}
	return l
}

func litCube() app.Lesson {
	l := lessons.LitCube()
	l.Texture = whitePixel
	return l
}

func TestSingleTriangleFrame(t *testing.T) {
	f := newFixture(t, singleTriangle())
	assert.Equal(t, app.Running, f.app.State())

	require.NoError(t, f.app.Tick())

	require.Len(t, f.rec.Draws, 1)
	call := f.rec.Draws[0]
	assert.Equal(t, geometry.Triangles, call.Primitive)
	assert.Equal(t, "triangle", call.Primitive.String())
	assert.Equal(t, int32(3), call.Count)
	assert.Equal(t, f.app.Projection(), call.Uniforms[render.UniformProjection])
	assert.Equal(t, mgl32.LookAtV(app.DefaultEye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}), call.Uniforms[render.UniformView])
	assert.Equal(t, mgl32.Ident4(), call.Uniforms[render.UniformModel])
	assert.Equal(t, 1, f.rec.Clears)
	assert.Equal(t, 1, f.surface.swaps)
	assert.Equal(t, uint64(1), f.app.Frames())
}

func TestTwoShapesDrawInFixedOrder(t *testing.T) {
	f := newFixture(t, lessons.WhiteShapes())
	for i := 0; i < 3; i++ {
		require.NoError(t, f.app.Tick())
	}

	require.Len(t, f.rec.Draws, 6)
	for i, call := range f.rec.Draws {
		if i%2 == 0 {
			assert.Equal(t, geometry.Triangles, call.Primitive)
			assert.Equal(t, mgl32.Translate3D(-1.5, 0, 0), call.Uniforms[render.UniformModel])
		} else {
			assert.Equal(t, geometry.Quads, call.Primitive)
			assert.Equal(t, int32(4), call.Count)
			assert.Equal(t, mgl32.Translate3D(1.5, 0, 0), call.Uniforms[render.UniformModel])
		}
	}
}

func TestReshapeUpdatesOnlyProjection(t *testing.T) {
	f := newFixture(t, litCube())
	f.rec.ResetCalls()

	require.NoError(t, f.app.Reshape(1920, 1080))

	require.Len(t, f.rec.UniformSets, 1)
	set := f.rec.UniformSets[0]
	assert.Equal(t, render.UniformProjection, set.Name)
	proj, ok := set.Value.(mgl32.Mat4)
	require.True(t, ok)
	assert.InDelta(t, 1920.0/1080.0, proj[5]/proj[0], 1e-5)
	assert.Equal(t, 1920, f.rec.ViewportW)
	assert.Equal(t, 1080, f.rec.ViewportH)
}

func TestReshapeIgnoresMinimizedWindow(t *testing.T) {
	f := newFixture(t, singleTriangle())
	before := f.app.Projection()
	f.rec.ResetCalls()

	require.NoError(t, f.app.Reshape(0, 0))
	assert.Empty(t, f.rec.UniformSets)
	assert.Equal(t, before, f.app.Projection())
}

func TestLightingToggle(t *testing.T) {
	f := newFixture(t, litCube())

	require.NoError(t, f.app.Tick())
	assert.Equal(t, int32(1), f.rec.Draws[0].Uniforms[render.UniformEnableLighting])

	f.app.KeyDown(input.KeyL)
	f.app.KeyUp(input.KeyL)
	require.NoError(t, f.app.Tick())
	assert.Equal(t, int32(0), f.rec.Draws[1].Uniforms[render.UniformEnableLighting])

	f.app.KeyDown(input.KeyL)
	f.app.KeyUp(input.KeyL)
	require.NoError(t, f.app.Tick())
	assert.Equal(t, int32(1), f.rec.Draws[2].Uniforms[render.UniformEnableLighting])
}

func TestLitCubeBindsTexture(t *testing.T) {
	f := newFixture(t, litCube())
	require.NoError(t, f.app.Tick())

	call := f.rec.Draws[0]
	assert.Equal(t, geometry.Quads, call.Primitive)
	assert.Equal(t, int32(24), call.Count)
	assert.NotZero(t, call.Textures[0])
	assert.Equal(t, int32(0), call.Uniforms[render.UniformTexture])
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, call.Uniforms[render.UniformLightDirection])
	for _, name := range []string{render.AttribPosition, render.AttribNormal, render.AttribUV} {
		assert.Contains(t, call.Attributes, name)
	}
}

func TestSpinFollowsFrameClock(t *testing.T) {
	f := newFixture(t, lessons.SpinningShapes())

	f.clock.Advance(500 * time.Millisecond)
	require.NoError(t, f.app.Tick())

	objs := f.app.Objects()
	require.Len(t, objs, 2)
	assert.InDelta(t, 0.5, objs[0].Angles[1], 1e-6)
	assert.InDelta(t, 0.25, objs[1].Angles[0], 1e-6)
	assert.InDelta(t, 0.5, objs[1].Angles[1], 1e-6)

	// A clock that steps backwards leaves the scene where it was.
	f.clock.Advance(-time.Second)
	require.NoError(t, f.app.Tick())
	assert.InDelta(t, 0.5, objs[0].Angles[1], 1e-6)
}

func TestDirectionalKeysRotate(t *testing.T) {
	f := newFixture(t, litCube())
	f.app.KeyUp(input.KeySpace)
	require.False(t, f.app.Input().Active(input.ToggleAutoRotate))

	f.app.KeyDown(input.KeyD)
	f.clock.Advance(time.Second)
	require.NoError(t, f.app.Tick())
	cube := f.app.Objects()[0]
	assert.InDelta(t, 1.0, cube.Angles[1], 1e-6)
	assert.InDelta(t, 0.0, cube.Angles[0], 1e-6)

	f.app.KeyUp(input.KeyD)
	f.app.KeyDown(input.KeyDown)
	f.clock.Advance(500 * time.Millisecond)
	require.NoError(t, f.app.Tick())
	assert.InDelta(t, 1.0, cube.Angles[1], 1e-6)
	assert.InDelta(t, 0.5, cube.Angles[0], 1e-6)
}

func TestAutoRotatePausesInteractiveLesson(t *testing.T) {
	f := newFixture(t, litCube())
	f.clock.Advance(time.Second)
	require.NoError(t, f.app.Tick())
	cube := f.app.Objects()[0]
	assert.InDelta(t, 1.0, cube.Angles[1], 1e-6)

	f.app.KeyUp(input.KeySpace)
	f.clock.Advance(time.Second)
	require.NoError(t, f.app.Tick())
	assert.InDelta(t, 1.0, cube.Angles[1], 1e-6)
}

func TestFullscreenToggle(t *testing.T) {
	f := newFixture(t, litCube())
	f.app.KeyDown(input.KeyF)
	f.app.KeyUp(input.KeyF)
	assert.False(t, f.surface.fullscreen, "applied on the next frame")

	require.NoError(t, f.app.Tick())
	assert.True(t, f.surface.fullscreen)

	f.app.KeyUp(input.KeyF)
	require.NoError(t, f.app.Tick())
	assert.False(t, f.surface.fullscreen)
}

func TestFullscreenFollowsWindow(t *testing.T) {
	f := newFixture(t, litCube())

	// The window manager takes the window fullscreen behind the app's back.
	f.surface.fullscreen = true
	require.NoError(t, f.app.Tick())
	assert.True(t, f.app.Input().Active(input.ToggleFullscreen))
	assert.Zero(t, f.surface.fullscreenSets)

	f.app.KeyUp(input.KeyF)
	require.NoError(t, f.app.Tick())
	assert.False(t, f.surface.fullscreen)
	assert.Equal(t, 1, f.surface.fullscreenSets)
}

func TestUncoloredMeshCannotFeedColorProgram(t *testing.T) {
	l := lessons.ColoredShapes()
	l.Objects[1].Geometry = geometry.Square()

	f := newFixture(t, l)
	err := f.app.Tick()
	var missing *render.MissingStreamError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, render.AttribColor, missing.Attribute)
	require.Len(t, f.rec.Draws, 1, "only the colored triangle is drawn")
}

func TestReshapeAfterExitKey(t *testing.T) {
	f := newFixture(t, singleTriangle())
	f.app.KeyDown(input.KeyEscape)
	assert.ErrorIs(t, f.app.Reshape(800, 600), app.ErrNotRunning)
}

func TestExitKeyClosesAndReleasesOnce(t *testing.T) {
	f := newFixture(t, litCube())
	require.NoError(t, f.app.Tick())

	f.app.KeyDown(input.KeyEscape)
	assert.Equal(t, app.Closing, f.app.State())
	assert.True(t, f.surface.closeRequested)
	assert.ErrorIs(t, f.app.Tick(), app.ErrNotRunning)

	f.app.Close()
	f.app.Close()
	assert.Equal(t, app.Terminated, f.app.State())

	handles := f.rec.Handles()
	require.NotEmpty(t, handles)
	for _, h := range handles {
		assert.Equal(t, 1, f.rec.Deleted[h], "handle %d", h)
	}
}

func TestShaderFailureIsFatal(t *testing.T) {
	rec := rendertest.NewRecorder()
	rec.FailStage = render.StageLink

	_, err := app.New(rec, &fakeSurface{}, singleTriangle(), app.Options{Width: 640, Height: 480})
	var compileErr *render.ShaderCompilationError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, render.StageLink, compileErr.Stage)
}

func TestTextureFailureReleasesPartialState(t *testing.T) {
	rec := rendertest.NewRecorder()
	l := lessons.LitCube()
	l.Texture = app.TextureFile(t.TempDir() + "/missing.png")

	_, err := app.New(rec, &fakeSurface{}, l, app.Options{Width: 640, Height: 480})
	var loadErr *render.TextureLoadError
	require.ErrorAs(t, err, &loadErr)

	handles := rec.Handles()
	require.Len(t, handles, 1, "only the program was created")
	assert.Equal(t, 1, rec.Deleted[handles[0]])
}

func TestInvalidGeometryIsFatal(t *testing.T) {
	rec := rendertest.NewRecorder()
	l := singleTriangle()
	l.Objects[0].Geometry.Indices = []uint32{0, 1, 5}

	_, err := app.New(rec, &fakeSurface{}, l, app.Options{Width: 640, Height: 480})
	var rangeErr *geometry.IndexOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestEveryLessonRendersAFrame(t *testing.T) {
	for _, l := range lessons.All() {
		t.Run(l.Name, func(t *testing.T) {
			if l.Texture != nil {
				l.Texture = whitePixel
			}
			f := newFixture(t, l)
			require.NoError(t, f.app.Tick())
			assert.Len(t, f.rec.Draws, len(l.Objects))
			f.app.Close()
		})
	}
}
