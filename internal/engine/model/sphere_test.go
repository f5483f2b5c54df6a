package model

import "testing"

func TestSphere(t *testing.T) {
	const r = 0.3
	m := Sphere("sun", r, 50, 50)

	if m.VertexCount() != 51*51 {
		t.Errorf("expected %d vertices, got %d", 51*51, m.VertexCount())
	}
	if m.FaceCount() != 50*49*2 {
		t.Errorf("expected %d faces, got %d", 50*49*2, m.FaceCount())
	}

	for i := 0; i < m.VertexCount(); i++ {
		p, n := m.Position(i), m.Normal(i)
		if !near(p.Length(), r) {
			t.Fatalf("vertex %d at distance %v, want %v", i, p.Length(), r)
		}
		if !near(n.Length(), 1) {
			t.Fatalf("vertex %d normal length %v", i, n.Length())
		}
	}

	for f := 0; f < m.FaceCount(); f++ {
		idx := m.Face(f)
		a, b, c := m.Position(int(idx[0])), m.Position(int(idx[1])), m.Position(int(idx[2]))
		fn := b.Sub(a).Cross(c.Sub(a))
		if fn.Length() == 0 {
			t.Fatalf("face %d is degenerate", f)
		}
		center := a.Add(b).Add(c)
		if fn.Dot(center) <= 0 {
			t.Fatalf("face %d winds inward", f)
		}
	}
}

func TestSphereClampsResolution(t *testing.T) {
	m := Sphere("tiny", 1, 0, 0)
	if m.FaceCount() != 3*1*2 {
		t.Errorf("expected %d faces, got %d", 6, m.FaceCount())
	}
}
