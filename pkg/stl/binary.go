package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/philipparndt/meshimport/internal/logger"
	"github.com/philipparndt/meshimport/pkg/model"
)

// Binary STL layout: an 80-byte free-form header, a uint32 little-endian
// triangle count, then one 50-byte record per triangle.
const (
	headerSize  = 80
	minFileSize = headerSize + 4
	recordSize  = 50

	// Offset of the first vertex within a record, past the 12-byte normal
	// vector. Neither the normal nor the trailing attribute count is stored.
	vertexOffset = 12
)

// triangle is one raw facet as stored in the file, vertex order preserved.
type triangle [3]model.Point3

// binarySTL holds the triangle soup of one file during decoding.
type binarySTL struct {
	triangles []triangle
}

// Decode reads a binary STL file into a generic model with a single mesh and
// one triangular face per facet record.
//
// Only a failure to open or stat the file is an error. Data-level problems
// are absorbed: a declared triangle count larger than the file supports is
// clamped to the number of full records actually present, and a file shorter
// than the 84-byte header decodes to an empty mesh. Multi-byte values are
// decoded explicitly as little-endian, independent of host byte order.
func Decode(filename string) (*model.Model, error) {
	logger.Debug("importing binary STL file", zap.String("file", filename))

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stl := &binarySTL{}
	if err := stl.load(file); err != nil {
		return nil, err
	}

	return stl.toModel(), nil
}

// load reads every triangle record the file length supports.
func (s *binarySTL) load(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	size := info.Size()
	if size < minFileSize {
		// Too short for even the header and count. Decode as zero triangles.
		return nil
	}

	reader := bufio.NewReader(file)
	if _, err := reader.Discard(headerSize); err != nil {
		return nil
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(reader, countBuf[:]); err != nil {
		return nil
	}
	declared := binary.LittleEndian.Uint32(countBuf[:])

	// Never trust the declared count beyond what the byte length supports.
	// This bounds both the reads and the allocation below.
	count := int64(declared)
	if available := (size - minFileSize) / recordSize; count > available {
		logger.Warn("triangle count exceeds file size, clamping",
			zap.String("file", file.Name()),
			zap.Uint32("declared", declared),
			zap.Int64("available", available))
		count = available
	}

	s.triangles = make([]triangle, 0, count)
	var record [recordSize]byte
	for i := int64(0); i < count; i++ {
		if _, err := io.ReadFull(reader, record[:]); err != nil {
			// The file shrank since stat. Keep what was read.
			logger.Warn("short read, keeping triangles read so far",
				zap.String("file", file.Name()), zap.Error(err))
			break
		}

		var tri triangle
		for v := 0; v < 3; v++ {
			tri[v] = decodePoint(record[vertexOffset+v*12:])
		}
		s.triangles = append(s.triangles, tri)
	}

	return nil
}

// decodePoint assembles one vertex from 12 little-endian float32 bytes.
func decodePoint(buf []byte) model.Point3 {
	return model.Point3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])),
	}
}

// toModel builds the generic model: always exactly one mesh, one face per
// triangle with the vertices in file order.
func (s *binarySTL) toModel() *model.Model {
	mesh := model.Mesh{Faces: make([]model.Face, 0, len(s.triangles))}
	for _, tri := range s.triangles {
		mesh.AddFace(model.Face{Vertices: []model.Point3{tri[0], tri[1], tri[2]}})
	}

	m := model.NewModel()
	m.Meshes = append(m.Meshes, mesh)
	return m
}
