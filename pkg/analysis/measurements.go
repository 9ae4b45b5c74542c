// Package analysis computes measurements over a decoded model.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/meshimport/pkg/geometry"
	"github.com/philipparndt/meshimport/pkg/model"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	FaceID int
}

// MeasurementResult contains various measurements of a model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	MeshCount     int
	FaceCount     int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeModel performs comprehensive analysis on a decoded model.
// Faces that are not triangles are skipped.
func AnalyzeModel(m *model.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: geometry.NewBoundingBox(),
		MeshCount:   len(m.Meshes),
		FaceCount:   m.FaceCount(),
		AllEdges:    make([]EdgeInfo, 0),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	faceID := 0

	for mi := range m.Meshes {
		for _, face := range m.Meshes[mi].Faces {
			tri, ok := geometry.FromFace(face)
			if !ok {
				faceID++
				continue
			}

			result.BoundingBox.Extend(tri.V1)
			result.BoundingBox.Extend(tri.V2)
			result.BoundingBox.Extend(tri.V3)
			result.SurfaceArea += tri.Area()

			edges := []struct {
				start, end geometry.Vector3
			}{
				{tri.V1, tri.V2},
				{tri.V2, tri.V3},
				{tri.V3, tri.V1},
			}

			for _, edge := range edges {
				length := edge.start.Distance(edge.end)

				result.AllEdges = append(result.AllEdges, EdgeInfo{
					Start:  edge.start,
					End:    edge.end,
					Length: length,
					FaceID: faceID,
				})

				totalLength += length
				if length < minLength {
					minLength = length
				}
				if length > maxLength {
					maxLength = length
				}
			}
			faceID++
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
		result.Dimensions = result.BoundingBox.Size()
		result.Volume = result.BoundingBox.Volume()
	}

	return result
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
