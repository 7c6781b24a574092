// Package host runs a lesson in a GLFW window with an OpenGL backend.
package host

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"gl-tutorial/app"
	"gl-tutorial/config"
	"gl-tutorial/core"
	"gl-tutorial/input"
	"gl-tutorial/internal/logging"
	"gl-tutorial/internal/opengl"
)

// Main runs lesson and exits the process with status 1 if it fails.
func Main(lesson app.Lesson) {
	if err := Run(lesson); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", lesson.Name, err)
		os.Exit(1)
	}
}

// Run opens the window, drives the render loop until the window closes or the
// exit key is pressed, then releases every resource before the context goes
// away.
func Run(lesson app.Lesson) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	title := cfg.Window.Title
	cfg.Window.Title = fmt.Sprintf("%s - %s", title, lesson.Name)
	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		log.Error("Failed to create window", zap.Error(err))
		return err
	}
	defer window.Destroy()

	backend, err := opengl.New(log)
	if err != nil {
		log.Error("Failed to initialize OpenGL", zap.Error(err))
		return err
	}
	defer backend.Release()

	width, height := window.GetFramebufferSize()
	a, err := app.New(backend, window, lesson, app.Options{
		Log:        log,
		Width:      width,
		Height:     height,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		log.Error("Failed to initialize lesson", zap.String("lesson", lesson.Name), zap.Error(err))
		return err
	}
	defer a.Close()

	// Callbacks run inside PollEvents on this thread.
	var fatal error
	window.SetKeyCallback(func(key int, pressed bool) {
		if pressed {
			a.KeyDown(input.Key(key))
		} else {
			a.KeyUp(input.Key(key))
		}
	})
	window.SetResizeCallback(func(w, h int) {
		if a.State() != app.Running {
			return
		}
		if err := a.Reshape(w, h); err != nil && fatal == nil {
			fatal = err
			window.RequestClose()
		}
	})

	frames := uint64(0)
	last := time.Now()
	for !window.ShouldClose() && a.State() == app.Running {
		window.PollEvents()
		if fatal != nil {
			break
		}
		if a.State() != app.Running {
			break
		}
		if err := a.Tick(); err != nil {
			fatal = err
			break
		}

		if now := time.Now(); now.Sub(last) >= time.Second {
			fps := a.Frames() - frames
			window.SetTitle(fmt.Sprintf("%s - FPS: %d", cfg.Window.Title, fps))
			frames = a.Frames()
			last = now
		}
	}

	if fatal != nil {
		log.Error("Render loop failed", zap.Error(fatal))
		return fatal
	}
	return nil
}
