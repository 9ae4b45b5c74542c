package stl

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestProbabilityWellFormed(t *testing.T) {
	path := writeSTL(t, "cube.stl", 3, testTriangles())

	p := Probability(path)
	want := 1 - probIncorrectExtension*probCoincidentalSize

	if p < want-1e-12 {
		t.Errorf("well-formed .stl scored %v, want at least %v", p, want)
	}
	if p > 1 {
		t.Errorf("probability %v out of range", p)
	}
}

func TestProbabilityInconsistentSize(t *testing.T) {
	// Correct extension, but the declared count does not match the length.
	path := writeSTL(t, "corrupt.stl", 1000, testTriangles())

	p := Probability(path)
	want := (1 - probIncorrectExtension) * probCoincidentalSize

	if math.Abs(p-want) > 1e-12 {
		t.Errorf("inconsistent .stl scored %v, want %v", p, want)
	}
}

func TestProbabilityWrongExtension(t *testing.T) {
	// Structurally perfect but named .bin: the structural check dominates.
	path := writeSTL(t, "cube.bin", 3, testTriangles())

	p := Probability(path)
	want := 1 - (1-probIncorrectExtension)*probCoincidentalSize

	if math.Abs(p-want) > 1e-12 {
		t.Errorf("consistent non-.stl scored %v, want %v", p, want)
	}
}

func TestProbabilityInRange(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.stl")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	junk := filepath.Join(dir, "junk")
	if err := os.WriteFile(junk, []byte("not a model at all"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	for _, path := range []string{
		empty,
		junk,
		filepath.Join(dir, "does-not-exist.stl"),
		"x", // shorter than the extension itself
	} {
		p := Probability(path)
		if p < 0 || p > 1 {
			t.Errorf("Probability(%q) = %v, out of [0,1]", path, p)
		}
	}
}

func TestProbabilityShortFile(t *testing.T) {
	// Files under 84 bytes are structurally inconsistent, never a crash.
	path := filepath.Join(t.TempDir(), "tiny.stl")
	if err := os.WriteFile(path, make([]byte, 40), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	p := Probability(path)
	want := (1 - probIncorrectExtension) * probCoincidentalSize

	if math.Abs(p-want) > 1e-12 {
		t.Errorf("short .stl scored %v, want %v", p, want)
	}
}

func TestProbabilityCaseSensitiveExtension(t *testing.T) {
	path := writeSTL(t, "cube.STL", 3, testTriangles())

	p := Probability(path)
	want := 1 - (1-probIncorrectExtension)*probCoincidentalSize

	if math.Abs(p-want) > 1e-12 {
		t.Errorf(".STL treated as matching extension: got %v, want %v", p, want)
	}
}
