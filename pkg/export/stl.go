// Package export writes built wing geometry to interchange formats:
// binary STL for the solid mesh and DXF for the 2D planform drawing.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chazu/wingloft/pkg/kernel"
)

// stlHeaderLen is the fixed binary STL header size.
const stlHeaderLen = 80

// WriteSTL writes a mesh as binary STL: an 80-byte header, a uint32
// triangle count, then per triangle a face normal, three vertices and a
// zero attribute byte count, all little-endian.
func WriteSTL(w io.Writer, m *kernel.Mesh) error {
	var header [stlHeaderLen]byte
	copy(header[:], "wingloft")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl: header: %w", err)
	}

	count := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("stl: triangle count: %w", err)
	}

	// 12 floats (normal + 3 vertices) plus the attribute count.
	var rec [12*4 + 2]byte
	for i := 0; i < int(count); i++ {
		a, b, c := m.Triangle(i)
		n := faceNormal(m, i)

		off := 0
		for _, v := range [][3]float32{n, a, b, c} {
			for _, f := range v {
				binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(f))
				off += 4
			}
		}
		rec[off] = 0
		rec[off+1] = 0

		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("stl: triangle %d: %w", i, err)
		}
	}
	return nil
}

// SaveSTL writes a mesh to a binary STL file.
func SaveSTL(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteSTL(bw, m); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("stl: %w", err)
	}
	return f.Close()
}

// faceNormal returns the per-vertex normal of the triangle's first
// vertex; the kernel backends emit flat per-face normals so any corner
// works.
func faceNormal(m *kernel.Mesh, i int) [3]float32 {
	if len(m.Normals) != len(m.Vertices) {
		return [3]float32{}
	}
	i0 := m.Indices[i*3]
	var n [3]float32
	copy(n[:], m.Normals[i0*3:i0*3+3])
	return n
}
