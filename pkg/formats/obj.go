package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/hierarchy/pkg/math"
)

// Mesh description errors.
var (
	ErrMalformedVertex     = errors.New("malformed vertex record")
	ErrMalformedFace       = errors.New("malformed face record")
	ErrFaceIndexOutOfRange = errors.New("face index out of range")
	ErrEmptyMesh           = errors.New("mesh description has no vertices")
)

// MeshFormatError reports a record that could not be turned into mesh data.
// Line is 1-based; it is 0 for errors that are not tied to one line.
type MeshFormatError struct {
	Line   int
	Record string
	Err    error
}

func (e *MeshFormatError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Record)
}

func (e *MeshFormatError) Unwrap() error {
	return e.Err
}

// Record tags.
const (
	objVertexTag = 'v'
	objFaceTag   = 'f'
)

// OBJ is a triangle mesh read from a text description: one record per line,
// "v x y z" for a vertex and "f a b c" for a triangle of 1-based indices.
// Any other line is ignored.
type OBJ struct {
	Vertices []math.Vec3
	Faces    [][3]uint32 // 0-based

	// Sum of all vertex positions, and the axis-aligned bounds, as read.
	Sum math.Vec3
	Min math.Vec3
	Max math.Vec3
}

// Centroid returns the mean vertex position.
func (o *OBJ) Centroid() math.Vec3 {
	if len(o.Vertices) == 0 {
		return math.Vec3{}
	}
	return o.Sum.Scale(1 / float32(len(o.Vertices)))
}

// Extent returns the bounding-box size on each axis.
func (o *OBJ) Extent() math.Vec3 {
	return o.Max.Sub(o.Min)
}

// ParseOBJ parses a mesh description.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	type faceRef struct {
		line   int
		record string
		raw    [3]int64
	}
	var refs []faceRef

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		// A tag counts when it stands alone or is followed by whitespace,
		// so "vn" and "vt" are skipped but a bare "v" is a malformed record.
		if len(line) == 0 || (len(line) > 1 && !isSpace(line[1])) {
			continue
		}

		switch line[0] {
		case objVertexTag:
			v, err := parseVertex(line[1:])
			if err != nil {
				return nil, &MeshFormatError{Line: lineNo, Record: line, Err: err}
			}
			if len(obj.Vertices) == 0 {
				obj.Min, obj.Max = v, v
			} else {
				obj.Min = obj.Min.Min(v)
				obj.Max = obj.Max.Max(v)
			}
			obj.Sum = obj.Sum.Add(v)
			obj.Vertices = append(obj.Vertices, v)

		case objFaceTag:
			raw, err := parseFace(line[1:])
			if err != nil {
				return nil, &MeshFormatError{Line: lineNo, Record: line, Err: err}
			}
			refs = append(refs, faceRef{line: lineNo, record: line, raw: raw})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh description: %w", err)
	}

	if len(obj.Vertices) == 0 {
		return nil, &MeshFormatError{Err: ErrEmptyMesh}
	}

	// Faces may precede the vertices they use, so range checks wait until
	// every vertex has been read.
	count := int64(len(obj.Vertices))
	obj.Faces = make([][3]uint32, len(refs))
	for i, ref := range refs {
		for j, idx := range ref.raw {
			if idx < 1 || idx > count {
				return nil, &MeshFormatError{
					Line:   ref.line,
					Record: ref.record,
					Err:    fmt.Errorf("%w: %d not in [1, %d]", ErrFaceIndexOutOfRange, idx, count),
				}
			}
			obj.Faces[i][j] = uint32(idx - 1)
		}
	}

	return obj, nil
}

// ParseOBJFile parses a mesh description from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh description: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f)
}

func parseVertex(rest string) (math.Vec3, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: want 3 coordinates, got %d", ErrMalformedVertex, len(fields))
	}
	var c [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: coordinate %d: %v", ErrMalformedVertex, i, err)
		}
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return math.Vec3{}, fmt.Errorf("%w: coordinate %d is not finite", ErrMalformedVertex, i)
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseFace returns the three 1-based indices. "i/j/k" tokens contribute
// their leading position index.
func parseFace(rest string) ([3]int64, error) {
	var idx [3]int64
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return idx, fmt.Errorf("%w: want 3 indices, got %d", ErrMalformedFace, len(fields))
	}
	for i := 0; i < 3; i++ {
		tok := fields[i]
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			tok = tok[:slash]
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return idx, fmt.Errorf("%w: index %d: %v", ErrMalformedFace, i, err)
		}
		idx[i] = n
	}
	return idx, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
