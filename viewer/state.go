// Package viewer ties the camera, the scene and the GPU objects together
// into the interactive frame loop.
package viewer

import (
	"log/slog"
	"sort"

	"github.com/toxichemicals/GO/holy-terrain/camera"
	"github.com/toxichemicals/GO/holy-terrain/scene"
	"github.com/toxichemicals/GO/holy-terrain/shader"
)

// Program names used by scene instances.
const (
	ProgramDefault  = "default"
	ProgramTextured = "textures"
)

// State is everything the input callbacks and the frame loop share.
type State struct {
	Camera   *camera.State
	Programs map[string]*shader.Program
}

func NewState(programs map[string]*shader.Program) *State {
	return &State{Camera: camera.New(), Programs: programs}
}

// ProgramFor returns the program an instance is drawn with.
func (s *State) ProgramFor(in scene.Instance) *shader.Program {
	if in.Textured {
		return s.Programs[ProgramTextured]
	}
	return s.Programs[ProgramDefault]
}

// ReloadPrograms recompiles every program from disk. Each program is swapped
// or kept independently, so one broken file does not take the other down.
func (s *State) ReloadPrograms(log *slog.Logger) {
	names := make([]string, 0, len(s.Programs))
	for name := range s.Programs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Programs[name].Reload(); err != nil {
			log.Error("shader reload failed, keeping old shader", "program", name, "error", err)
			continue
		}
		log.Info("shader reloaded", "program", name)
	}
}
