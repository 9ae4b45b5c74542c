package stl

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/meshimport/pkg/model"
)

// writeSTL builds a binary STL file in a temp dir and returns its path.
// declared is written as the triangle count regardless of how many records
// follow, so tests can fabricate inconsistent files.
func writeSTL(t *testing.T, name string, declared uint32, triangles []triangle) string {
	t.Helper()

	var buf bytes.Buffer
	buf.Write(make([]byte, headerSize))
	if err := binary.Write(&buf, binary.LittleEndian, declared); err != nil {
		t.Fatalf("failed to write count: %v", err)
	}

	for _, tri := range triangles {
		normal := [3]float32{7, 8, 9} // junk, must be ignored by the decoder
		if err := binary.Write(&buf, binary.LittleEndian, normal); err != nil {
			t.Fatalf("failed to write normal: %v", err)
		}
		for _, v := range tri {
			if err := binary.Write(&buf, binary.LittleEndian, [3]float32{v.X, v.Y, v.Z}); err != nil {
				t.Fatalf("failed to write vertex: %v", err)
			}
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint16(0xBEEF)); err != nil {
			t.Fatalf("failed to write attribute: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func testTriangles() []triangle {
	return []triangle{
		{
			model.NewPoint3(0, 0, 0),
			model.NewPoint3(1, 0, 0),
			model.NewPoint3(0, 1, 0),
		},
		{
			model.NewPoint3(1.5, -2.25, 3),
			model.NewPoint3(4, 5.5, -6),
			model.NewPoint3(-7, 8, 9.75),
		},
		{
			model.NewPoint3(10, 20, 30),
			model.NewPoint3(40, 50, 60),
			model.NewPoint3(70, 80, 90),
		},
	}
}
