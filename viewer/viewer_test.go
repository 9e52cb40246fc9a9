package viewer

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/toxichemicals/GO/holy-terrain/camera"
	"github.com/toxichemicals/GO/holy-terrain/scene"
	"github.com/toxichemicals/GO/holy-terrain/shader"
	"github.com/toxichemicals/GO/holy-terrain/transform"
)

type fakeCompiler struct {
	next    uint32
	deleted []uint32
}

func (c *fakeCompiler) Compile(sources []shader.Source) (uint32, error) {
	for _, s := range sources {
		if strings.Contains(s.Text, "syntax error") {
			return 0, errors.New(s.Path + ": syntax error")
		}
	}
	c.next++
	return c.next, nil
}

func (c *fakeCompiler) Delete(id uint32) { c.deleted = append(c.deleted, id) }

type fakeWindow struct {
	closed       bool
	cursorHidden bool
	cursorCalls  int

	// Framebuffer sizes returned in turn; the last one sticks.
	sizes [][2]int
	waits int
	polls int
	swaps int

	closeOnWait bool
}

func (w *fakeWindow) SetShouldClose(v bool) { w.closed = v }
func (w *fakeWindow) SetCursorHidden(v bool) {
	w.cursorHidden = v
	w.cursorCalls++
}
func (w *fakeWindow) ShouldClose() bool { return w.closed }
func (w *fakeWindow) PollEvents() { w.polls++ }
func (w *fakeWindow) WaitEvents() {
	w.waits++
	if w.closeOnWait {
		w.closed = true
	}
}
func (w *fakeWindow) SwapBuffers() { w.swaps++ }
func (w *fakeWindow) FramebufferSize() (int, int) {
	s := w.sizes[0]
	if len(w.sizes) > 1 {
		w.sizes = w.sizes[1:]
	}
	return s[0], s[1]
}

type draw struct {
	instance scene.Instance
	frame    transform.Frame
	program  uint32
}

// fakeRenderer records draws and, when state is set, the program handle
// each instance would be bound to.
type fakeRenderer struct {
	state  *State
	begins [][2]int
	draws  []draw
}

func (r *fakeRenderer) Begin(w, h int) { r.begins = append(r.begins, [2]int{w, h}) }
func (r *fakeRenderer) Draw(in scene.Instance, f transform.Frame) {
	d := draw{instance: in, frame: f}
	if r.state != nil {
		d.program = r.state.ProgramFor(in).ID()
	}
	r.draws = append(r.draws, d)
}

func newProgram(t *testing.T, c shader.Compiler, dir, name, text string) *shader.Program {
	t.Helper()
	vert := filepath.Join(dir, name+".vert")
	frag := filepath.Join(dir, name+".frag")
	for _, p := range []string{vert, frag} {
		if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	p, err := shader.New(c, shader.Stage{Type: 1, Path: vert}, shader.Stage{Type: 2, Path: frag})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func testInput(t *testing.T) (*Input, *fakeWindow, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	c := &fakeCompiler{}
	state := NewState(map[string]*shader.Program{
		ProgramDefault:  newProgram(t, c, dir, ProgramDefault, "void main() {}"),
		ProgramTextured: newProgram(t, c, dir, ProgramTextured, "void main() {}"),
	})
	var logs bytes.Buffer
	w := &fakeWindow{sizes: [][2]int{{1280, 720}}}
	return &Input{State: state, Window: w, Log: slog.New(slog.NewTextHandler(&logs, nil))}, w, &logs, dir
}

func TestEscapeClosesWindow(t *testing.T) {
	in, w, _, _ := testInput(t)
	in.Key(camera.KeyEscape, camera.Press)
	if !w.closed {
		t.Fatal("escape did not request close")
	}
}

func TestDoubleToggleRestoresCursor(t *testing.T) {
	in, w, _, _ := testInput(t)
	in.CursorPos(100, 50)

	in.Key(camera.KeyToggle, camera.Press)
	if !w.cursorHidden || !in.State.Camera.Active {
		t.Fatal("first toggle should hide the cursor and activate the camera")
	}
	in.CursorPos(110, 40)
	in.Key(camera.KeyToggle, camera.Press)

	if w.cursorHidden || in.State.Camera.Active {
		t.Fatal("second toggle should restore the cursor")
	}
	if w.cursorCalls != 2 {
		t.Fatalf("cursor mode set %d times, want 2", w.cursorCalls)
	}
	cam := in.State.Camera
	if math.Abs(float64(cam.Phi-0.1)) > 1e-6 || math.Abs(float64(cam.Theta+0.1)) > 1e-6 {
		t.Fatalf("angles after motion = (%v, %v), want (0.1, -0.1)", cam.Phi, cam.Theta)
	}
}

func TestReloadSwapsPrograms(t *testing.T) {
	in, _, logs, _ := testInput(t)
	before := in.State.Programs[ProgramDefault].ID()

	in.Key(camera.KeyReload, camera.Press)

	if in.State.Programs[ProgramDefault].ID() == before {
		t.Fatal("reload did not replace the program")
	}
	if got := strings.Count(logs.String(), "shader reloaded"); got != 2 {
		t.Fatalf("logged %d reloads, want 2:\n%s", got, logs)
	}
}

func TestReloadFailureKeepsOldShader(t *testing.T) {
	in, w, logs, dir := testInput(t)
	keep := in.State.Programs[ProgramTextured].ID()
	if err := os.WriteFile(filepath.Join(dir, ProgramTextured+".frag"), []byte("syntax error"), 0o644); err != nil {
		t.Fatal(err)
	}
	defaultBefore := in.State.Programs[ProgramDefault].ID()

	in.Key(camera.KeyReload, camera.Press)

	if got := in.State.Programs[ProgramTextured].ID(); got != keep {
		t.Fatalf("textured program = %d, want %d kept", got, keep)
	}
	if in.State.Programs[ProgramDefault].ID() == defaultBefore {
		t.Fatal("the healthy program should still be swapped")
	}
	if !strings.Contains(logs.String(), "keeping old shader") {
		t.Fatalf("failure not reported:\n%s", logs)
	}

	// The next frame still renders, textured instances with the kept program.
	r := &fakeRenderer{state: in.State}
	l := &Loop{Surface: w, Renderer: r, Scene: scene.Default(), State: in.State}
	drew, err := l.Step()
	if err != nil || !drew {
		t.Fatalf("Step() after failed reload = %v, %v", drew, err)
	}
	if len(r.draws) != len(l.Scene.Instances) || w.swaps != 1 {
		t.Fatalf("%d draws, %d swaps after failed reload", len(r.draws), w.swaps)
	}
	for _, d := range r.draws {
		want := in.State.Programs[ProgramDefault].ID()
		if d.instance.Textured {
			want = keep
		}
		if d.program != want {
			t.Fatalf("%s drawn with program %d, want %d", d.instance.Name, d.program, want)
		}
	}
}

func TestStepDrawsEveryInstance(t *testing.T) {
	in, w, _, _ := testInput(t)
	r := &fakeRenderer{}
	clock := time.Unix(0, 0)
	l := &Loop{Surface: w, Renderer: r, Scene: scene.Default(), State: in.State,
		Now: func() time.Time { return clock }}

	in.Key(camera.KeyToggle, camera.Press)
	in.Key(camera.KeyForward, camera.Press)

	if _, err := l.Step(); err != nil {
		t.Fatal(err)
	}
	clock = clock.Add(time.Second)
	drew, err := l.Step()
	if err != nil || !drew {
		t.Fatalf("Step() = %v, %v", drew, err)
	}

	if len(r.draws) != 2*len(l.Scene.Instances) {
		t.Fatalf("%d draws, want %d", len(r.draws), 2*len(l.Scene.Instances))
	}
	if w.polls != 2 || w.swaps != 2 {
		t.Fatalf("polls=%d swaps=%d, want 2 each", w.polls, w.swaps)
	}
	if r.begins[1] != [2]int{1280, 720} {
		t.Fatalf("viewport = %v", r.begins[1])
	}
	if z := in.State.Camera.Position.Z(); math.Abs(float64(z+5)) > 1e-5 {
		t.Fatalf("camera z after 1s forward = %v, want -5", z)
	}
}

func TestMinimizedWindowWaitsWithoutDrawing(t *testing.T) {
	in, w, _, _ := testInput(t)
	w.sizes = [][2]int{{0, 0}, {0, 0}, {0, 0}, {640, 360}}
	r := &fakeRenderer{}
	l := &Loop{Surface: w, Renderer: r, Scene: scene.Default(), State: in.State}

	if _, err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if w.waits != 3 {
		t.Fatalf("waited %d times, want 3", w.waits)
	}
	if len(r.begins) != 1 || r.begins[0] != [2]int{640, 360} {
		t.Fatalf("begins = %v", r.begins)
	}
	for _, d := range r.draws {
		for _, v := range d.frame.ProjCameraWorld {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Fatalf("non-finite matrix for %s", d.instance.Name)
			}
		}
	}
}

func TestCloseWhileMinimized(t *testing.T) {
	in, w, _, _ := testInput(t)
	w.sizes = [][2]int{{0, 0}}
	w.closeOnWait = true
	r := &fakeRenderer{}
	l := &Loop{Surface: w, Renderer: r, Scene: scene.Default(), State: in.State}

	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if len(r.begins) != 0 || len(r.draws) != 0 || w.swaps != 0 {
		t.Fatal("nothing should be drawn while minimized")
	}
}

func TestMapKey(t *testing.T) {
	tests := map[glfw.Key]camera.Key{
		glfw.KeyEscape:      camera.KeyEscape,
		glfw.KeyR:           camera.KeyReload,
		glfw.KeySpace:       camera.KeyToggle,
		glfw.KeyE:           camera.KeyUp,
		glfw.KeyQ:           camera.KeyDown,
		glfw.KeyLeftControl: camera.KeyCrouch,
		glfw.KeyF1:          camera.KeyUnknown,
	}
	for k, want := range tests {
		if got := MapKey(k); got != want {
			t.Errorf("MapKey(%v) = %v, want %v", k, got, want)
		}
	}
	if MapAction(glfw.Repeat) != camera.Repeat || MapAction(glfw.Release) != camera.Release {
		t.Error("MapAction mismatch")
	}
}
