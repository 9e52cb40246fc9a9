// Package shader builds GPU programs from shader source files and supports
// reloading them while the viewer runs.
package shader

import (
	"errors"
	"fmt"
	"os"
)

var ErrNoStages = errors.New("shader: program has no stages")

// Stage is one shader source file and its GL stage type
// (gl.VERTEX_SHADER, gl.FRAGMENT_SHADER, ...).
type Stage struct {
	Type uint32
	Path string
}

// Source is a stage together with its loaded text.
type Source struct {
	Stage
	Text string
}

// Compiler turns sources into a linked program handle.
type Compiler interface {
	Compile(sources []Source) (uint32, error)
	Delete(program uint32)
}

// Program owns a linked program handle. The handle is only ever replaced by
// another fully linked program.
type Program struct {
	compiler Compiler
	stages   []Stage
	id       uint32
}

// New loads, compiles and links the given stages.
func New(c Compiler, stages ...Stage) (*Program, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	p := &Program{compiler: c, stages: append([]Stage(nil), stages...)}
	id, err := p.build()
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// ID returns the current program handle.
func (p *Program) ID() uint32 { return p.id }

// Reload re-reads and recompiles every stage. On success the old program is
// deleted and replaced; on failure the current program is left as it is and
// the error is returned.
func (p *Program) Reload() error {
	id, err := p.build()
	if err != nil {
		return err
	}
	old := p.id
	p.id = id
	if old != 0 {
		p.compiler.Delete(old)
	}
	return nil
}

// Release deletes the program. It is safe to call more than once.
func (p *Program) Release() {
	if p.id != 0 {
		p.compiler.Delete(p.id)
		p.id = 0
	}
}

func (p *Program) build() (uint32, error) {
	sources := make([]Source, 0, len(p.stages))
	for _, s := range p.stages {
		text, err := os.ReadFile(s.Path)
		if err != nil {
			return 0, fmt.Errorf("could not read shader %s: %w", s.Path, err)
		}
		sources = append(sources, Source{Stage: s, Text: string(text)})
	}
	id, err := p.compiler.Compile(sources)
	if err != nil {
		return 0, err
	}
	return id, nil
}
