package kernel

import "github.com/chazu/sdfscene/pkg/field"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals and colors have 3 floats per vertex, indices has 3 uint32s per
// triangle. Colors may be empty when the kernel produced the mesh and no
// scene has shaded it yet.
type Mesh struct {
	Vertices []float32 `json:"vertices"`         // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`          // [nx0,ny0,nz0, ...]
	Colors   []float32 `json:"colors,omitempty"` // [r0,g0,b0, ...]
	Indices  []uint32  `json:"indices"`          // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"`         // which material this came from
}

// Triangle is one unindexed triangle with a face normal.
type Triangle struct {
	V      [3]field.Vec3
	Normal field.Vec3
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() field.Vec3 {
	s := t.V[0].Add(t.V[1]).Add(t.V[2])
	return field.Vec3{X: s.X / 3, Y: s.Y / 3, Z: s.Z / 3}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the i-th triangle. The normal is taken from the first
// vertex.
func (m *Mesh) Triangle(i int) Triangle {
	var t Triangle
	for j := 0; j < 3; j++ {
		k := int(m.Indices[i*3+j]) * 3
		t.V[j] = field.Vec3{
			X: float64(m.Vertices[k]),
			Y: float64(m.Vertices[k+1]),
			Z: float64(m.Vertices[k+2]),
		}
		if j == 0 && len(m.Normals) > k+2 {
			t.Normal = field.Vec3{
				X: float64(m.Normals[k]),
				Y: float64(m.Normals[k+1]),
				Z: float64(m.Normals[k+2]),
			}
		}
	}
	return t
}

// AddTriangle appends a triangle with its own three vertices. colors may be
// nil; once any triangle carries colors every triangle should.
func (m *Mesh) AddTriangle(t Triangle, colors *[3]field.Color3) {
	base := uint32(m.VertexCount())
	for j := 0; j < 3; j++ {
		v := t.V[j]
		m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
		m.Normals = append(m.Normals, float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z))
		if colors != nil {
			c := colors[j]
			m.Colors = append(m.Colors, float32(c.R), float32(c.G), float32(c.B))
		}
		m.Indices = append(m.Indices, base+uint32(j))
	}
}
