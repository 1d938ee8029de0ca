// Package glcontext wraps GLFW window and OpenGL context management for
// the scene renderer.
package glcontext

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

var glInitOnce sync.Once

// Context owns the application window and its OpenGL 4.1 core context.
type Context struct {
	window *glfw.Window
}

// Init initializes GLFW. Must be called from the main thread, which it
// locks.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	log.Printf("GLFW initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW terminated")
}

// New creates a visible window with a 4.1 core profile context, makes
// it current, and loads the OpenGL bindings. Escape closes the window.
func New(width, height int, title string) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	c := &Context{window: win}
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	c.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	return c, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame swaps buffers and pumps the event queue.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}
