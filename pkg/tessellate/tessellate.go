// Package tessellate meshes a scene using a geometry kernel. One mesh is
// produced per material, with every vertex shaded by the scene's color
// sampler.
package tessellate

import (
	"fmt"
	"sort"

	"github.com/chazu/sdfscene/pkg/field"
	"github.com/chazu/sdfscene/pkg/kernel"
	"github.com/chazu/sdfscene/pkg/scene"
)

// Tessellate bounds the scene with its suggested bounds, meshes it with k
// and partitions the triangles by the material nearest each centroid.
// Meshes are returned in material order. The scene is only read.
func Tessellate(sc scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	min, max := sc.Bounds()
	solid := k.Bound(sc,
		[3]float64{min.X, min.Y, min.Z},
		[3]float64{max.X, max.Y, max.Z},
	)

	raw, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for scene %s: %w", sc.Name, err)
	}
	return partition(sc, raw), nil
}

// partition splits a raw kernel mesh into per-material meshes.
func partition(sc scene.Scene, raw *kernel.Mesh) []*kernel.Mesh {
	parts := make(map[scene.Material]*kernel.Mesh)

	for i := 0; i < raw.TriangleCount(); i++ {
		tri := raw.Triangle(i)
		m := sc.Sample(tri.Centroid()).Material

		mesh, ok := parts[m]
		if !ok {
			mesh = &kernel.Mesh{PartName: m.String()}
			parts[m] = mesh
		}

		var colors [3]field.Color3
		for j, v := range tri.V {
			colors[j] = sc.Color(v)
		}
		mesh.AddTriangle(tri, &colors)
	}

	materials := make([]scene.Material, 0, len(parts))
	for m := range parts {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i] < materials[j] })

	meshes := make([]*kernel.Mesh, 0, len(materials))
	for _, m := range materials {
		meshes = append(meshes, parts[m])
	}
	return meshes
}
