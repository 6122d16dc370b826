package component

import "github.com/go-gl/mathgl/mgl32"

// SharpCube returns a unit cube centred on the origin with four vertices per
// face, so faces do not share normals or colours.
func SharpCube() *Mesh {
	corners := [6][4]mgl32.Vec3{
		{{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}},     // front
		{{0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}},     // right
		{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}}, // back
		{{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}}, // left
		{{-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},     // top
		{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}}, // bottom
	}
	normals := [6]mgl32.Vec3{{0, 0, 1}, {1, 0, 0}, {0, 0, -1}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
	colors := [4]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}
	uvs := [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for f := range corners {
		base := uint32(len(m.Vertices))
		for i, p := range corners[f] {
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   normals[f],
				TexCoord: uvs[i],
				Color:    colors[i],
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+3,
			base+1, base+2, base+3,
		)
	}
	return m
}

// PlaneXZ returns a unit grid lying in the XZ plane, facing +Y.
func PlaneXZ(cols, rows uint32) *Mesh {
	return plane(cols, rows, mgl32.Vec3{0, 1, 0}, func(u, v float32) mgl32.Vec3 {
		return mgl32.Vec3{u - 0.5, 0, 0.5 - v}
	})
}

// PlaneXY returns a unit grid lying in the XY plane, facing +Z.
func PlaneXY(cols, rows uint32) *Mesh {
	return plane(cols, rows, mgl32.Vec3{0, 0, 1}, func(u, v float32) mgl32.Vec3 {
		return mgl32.Vec3{u - 0.5, v - 0.5, 0}
	})
}

// PlaneYZ returns a unit grid lying in the YZ plane, facing +X.
func PlaneYZ(cols, rows uint32) *Mesh {
	return plane(cols, rows, mgl32.Vec3{1, 0, 0}, func(u, v float32) mgl32.Vec3 {
		return mgl32.Vec3{0, v - 0.5, 0.5 - u}
	})
}

// plane builds a cols×rows vertex grid (at least 2×2) and two triangles per
// cell.
func plane(cols, rows uint32, normal mgl32.Vec3, at func(u, v float32) mgl32.Vec3) *Mesh {
	cols = max(cols, 2)
	rows = max(rows, 2)

	m := &Mesh{
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint32, 0, (cols-1)*(rows-1)*6),
	}
	for j := uint32(0); j < rows; j++ {
		for i := uint32(0); i < cols; i++ {
			u := float32(i) / float32(cols-1)
			v := float32(j) / float32(rows-1)
			m.Vertices = append(m.Vertices, Vertex{
				Position: at(u, v),
				Normal:   normal,
				TexCoord: mgl32.Vec2{u, v},
				Color:    mgl32.Vec3{u, v, 0},
			})
		}
	}
	for j := uint32(0); j < rows-1; j++ {
		for i := uint32(0); i < cols-1; i++ {
			i1 := i + j*cols
			i2 := i + (j+1)*cols
			i3 := i + 1 + (j+1)*cols
			i4 := i + 1 + j*cols
			m.Indices = append(m.Indices, i1, i2, i4, i2, i3, i4)
		}
	}
	return m
}
