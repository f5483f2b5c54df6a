package model

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/hierarchy/internal/logger"
	"github.com/Faultbox/hierarchy/pkg/formats"
)

// Loader reads mesh descriptions from disk and builds meshes from them.
type Loader struct {
	dir  string
	opts BuildOptions
}

// NewLoader creates a loader resolving relative paths against dir.
func NewLoader(dir string, opts BuildOptions) *Loader {
	return &Loader{dir: dir, opts: opts}
}

// Load reads and builds a single mesh.
func (l *Loader) Load(name, path string) (*Mesh, error) {
	full := l.resolve(path)

	obj, err := formats.ParseOBJFile(full)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %q from %s: %w", name, full, err)
	}

	m, err := Build(name, obj, l.opts)
	if err != nil {
		return nil, fmt.Errorf("building mesh %q: %w", name, err)
	}

	logger.Info("mesh loaded",
		zap.String("name", name),
		zap.String("path", full),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()),
	)
	if n := len(m.DegenerateVertices()); n > 0 {
		logger.Warn("degenerate vertex normals",
			zap.String("name", name),
			zap.Int("count", n),
			zap.Bool("fallback", l.opts.NormalFallback != nil),
		)
	}

	return m, nil
}

// LoadAll loads every named mesh. Names are processed in sorted order and
// the first failure aborts the whole load; no partial map is returned.
// Names that point at the same file share one Mesh.
func (l *Loader) LoadAll(paths map[string]string) (map[string]*Mesh, error) {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	meshes := make(map[string]*Mesh, len(paths))
	byPath := make(map[string]*Mesh, len(paths))
	for _, name := range names {
		full := l.resolve(paths[name])
		if m, ok := byPath[full]; ok {
			meshes[name] = m
			continue
		}

		m, err := l.Load(name, paths[name])
		if err != nil {
			return nil, err
		}
		meshes[name] = m
		byPath[full] = m
	}

	return meshes, nil
}

func (l *Loader) resolve(path string) string {
	if l.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.dir, path)
}
