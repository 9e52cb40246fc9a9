package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Checkpoint drains the GL error queue. Any pending error is returned,
// tagged with where the check happened.
func Checkpoint(where string) error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, errorName(code))
		if len(codes) > 16 {
			break // a lost context keeps reporting forever
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("GL error after %s: %s", where, strings.Join(codes, ", "))
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

func enableDebugOutput() {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		slog.Warn("debug output requested but the context is not a debug context")
		return
	}

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		level := slog.LevelDebug
		switch severity {
		case gl.DEBUG_SEVERITY_HIGH:
			level = slog.LevelError
		case gl.DEBUG_SEVERITY_MEDIUM:
			level = slog.LevelWarn
		case gl.DEBUG_SEVERITY_LOW:
			level = slog.LevelInfo
		}
		slog.Log(context.Background(), level, "gl debug", "source", source, "type", gltype, "id", id, "message", message)
	}, nil)
	slog.Info("GL debug output enabled")
}
