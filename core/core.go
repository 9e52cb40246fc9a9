// Package core owns the window, the GL context and the input plumbing that
// GLFW exposes. Everything in here must run on the main OS thread.
package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options tweak context creation.
type Options struct {
	VSync bool
	Debug bool // request a debug context and install a message callback
}

// Core struct encapsulates the low-level graphics and windowing components.
type Core struct {
	window *glfw.Window

	width, height int
	title         string
	opts          Options

	glfwReady bool
}

// NewCore creates a Core for a window of the given size. Nothing is created
// until Init.
func NewCore(width, height int, title string, opts Options) *Core {
	return &Core{
		width:  width,
		height: height,
		title:  title,
		opts:   opts,
	}
}

// Init initializes GLFW, creates the window and GL 4.3 core context, loads
// the GL API and sets the global GL state.
func (c *Core) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	c.glfwReady = true

	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DepthBits, 24)
	if c.opts.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(c.width, c.height, c.title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	c.window = window
	c.window.MakeContextCurrent()

	if c.opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	if c.opts.Debug {
		enableDebugOutput()
	}
	if err := Checkpoint("context setup"); err != nil {
		return err
	}

	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.2, 0.2, 0.2, 0.0)

	w, h := c.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	return Checkpoint("global GL state")
}

// Info holds the driver identification strings.
type Info struct {
	Renderer        string
	Vendor          string
	Version         string
	ShadingLanguage string
}

func (c *Core) Info() Info {
	return Info{
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// Print writes the strings one per line, in the form drivers are usually
// quoted in bug reports.
func (i Info) Print(w io.Writer) {
	fmt.Fprintf(w, "RENDERER %s\n", i.Renderer)
	fmt.Fprintf(w, "VENDOR %s\n", i.Vendor)
	fmt.Fprintf(w, "VERSION %s\n", i.Version)
	fmt.Fprintf(w, "SHADING_LANGUAGE_VERSION %s\n", i.ShadingLanguage)
}

func (c *Core) ShouldClose() bool { return c.window.ShouldClose() }

func (c *Core) SetShouldClose(v bool) { c.window.SetShouldClose(v) }

// PollEvents processes pending window events and runs input callbacks.
func (c *Core) PollEvents() { glfw.PollEvents() }

// WaitEvents blocks until at least one event arrives.
func (c *Core) WaitEvents() { glfw.WaitEvents() }

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays and is zero while minimized.
func (c *Core) FramebufferSize() (int, int) { return c.window.GetFramebufferSize() }

// SwapBuffers swaps the front and back buffers to display the rendered frame.
func (c *Core) SwapBuffers() { c.window.SwapBuffers() }

// SetCursorHidden hides the pointer while it is over the window.
func (c *Core) SetCursorHidden(hidden bool) {
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	c.window.SetInputMode(glfw.CursorMode, mode)
}

// OnKey registers fn for key events.
func (c *Core) OnKey(fn func(key glfw.Key, action glfw.Action)) {
	c.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fn(key, action)
	})
}

// OnCursorPos registers fn for pointer motion in window coordinates.
func (c *Core) OnCursorPos(fn func(x, y float64)) {
	c.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(x, y)
	})
}

// Shutdown destroys the window and terminates GLFW. GPU objects must be
// released before this is called.
func (c *Core) Shutdown() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	if c.glfwReady {
		glfw.Terminate()
		c.glfwReady = false
	}
	slog.Debug("window closed")
}
