package core

import (
	"bytes"
	"testing"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Release() { *r.log = append(*r.log, r.name) }

func TestResourcesReleaseInReverseOrder(t *testing.T) {
	var log []string
	var rs Resources
	for _, n := range []string{"program", "vao", "texture"} {
		rs.Track(recorder{n, &log})
	}
	if rs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rs.Len())
	}

	rs.Release()
	want := []string{"texture", "vao", "program"}
	if len(log) != len(want) {
		t.Fatalf("released %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("released %v, want %v", log, want)
		}
	}

	rs.Release()
	if len(log) != 3 || rs.Len() != 0 {
		t.Fatalf("second Release re-released objects: %v", log)
	}
}

func TestInfoPrint(t *testing.T) {
	var buf bytes.Buffer
	Info{Renderer: "llvmpipe", Vendor: "Mesa", Version: "4.3 (Core Profile) Mesa 24.0", ShadingLanguage: "4.30"}.Print(&buf)

	want := "RENDERER llvmpipe\nVENDOR Mesa\nVERSION 4.3 (Core Profile) Mesa 24.0\nSHADING_LANGUAGE_VERSION 4.30\n"
	if buf.String() != want {
		t.Fatalf("Print wrote %q, want %q", buf.String(), want)
	}
}
