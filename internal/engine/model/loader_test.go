package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/hierarchy/internal/logger"
	"github.com/Faultbox/hierarchy/pkg/formats"
)

func writeMesh(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeMesh(t, dir, "tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	writeMesh(t, dir, "quad.obj", "v 0 0 0\nv 2 0 0\nv 2 2 0\nv 0 2 0\nf 1 2 3\nf 1 3 4\n")

	l := NewLoader(dir, BuildOptions{})
	meshes, err := l.LoadAll(map[string]string{
		"tri":   "tri.obj",
		"quad":  "quad.obj",
		"quad2": filepath.Join(dir, "quad.obj"),
	})
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(meshes))
	}
	if meshes["tri"].FaceCount() != 1 || meshes["quad"].FaceCount() != 2 {
		t.Errorf("unexpected face counts: tri=%d quad=%d", meshes["tri"].FaceCount(), meshes["quad"].FaceCount())
	}
	if meshes["quad"] != meshes["quad2"] {
		t.Error("names pointing at the same file should share one mesh")
	}
	if meshes["tri"].Name() != "tri" {
		t.Errorf("expected name tri, got %s", meshes["tri"].Name())
	}
}

func TestLoaderLoadAllAbortsOnError(t *testing.T) {
	dir := t.TempDir()
	writeMesh(t, dir, "good.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	writeMesh(t, dir, "bad.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n")

	l := NewLoader(dir, BuildOptions{})
	meshes, err := l.LoadAll(map[string]string{"good": "good.obj", "bad": "bad.obj"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if meshes != nil {
		t.Error("expected no partial result on failure")
	}
	if !errors.Is(err, formats.ErrFaceIndexOutOfRange) {
		t.Errorf("expected ErrFaceIndexOutOfRange, got %v", err)
	}
	var fe *formats.MeshFormatError
	if !errors.As(err, &fe) || fe.Line != 4 {
		t.Errorf("expected MeshFormatError at line 4, got %v", err)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(t.TempDir(), BuildOptions{})
	if _, err := l.Load("ghost", "ghost.obj"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoaderWarnsOnDegenerateNormals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	dir := t.TempDir()
	writeMesh(t, dir, "loose.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 3 3 3\nv 4 4 4\nf 1 2 3\n")

	m, err := NewLoader(dir, BuildOptions{}).Load("loose", "loose.obj")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.DegenerateVertices()) != 2 {
		t.Errorf("expected 2 degenerate vertices, got %v", m.DegenerateVertices())
	}

	warns := logs.FilterMessage("degenerate vertex normals").All()
	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warns))
	}
	if got := warns[0].ContextMap()["count"]; got != int64(2) {
		t.Errorf("expected count 2 in warning, got %v", got)
	}
	if logs.FilterMessage("mesh loaded").Len() != 1 {
		t.Error("expected a mesh loaded entry")
	}
}
