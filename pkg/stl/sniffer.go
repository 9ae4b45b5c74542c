// Package stl detects and decodes binary STL (stereolithography) files.
package stl

import (
	"encoding/binary"
	"os"
	"strings"
)

const (
	// probIncorrectExtension is the probability that a file named *.stl is
	// not actually binary STL (or that a binary STL file is named something
	// else). Kept deliberately high so the structural check dominates.
	probIncorrectExtension = 0.01

	// probCoincidentalSize is the probability that a file which is not
	// binary STL still happens to be exactly 84+50*N bytes long, where N is
	// the uint32 stored at byte 80.
	probCoincidentalSize = 0.0001
)

// Probability estimates how likely the named file is a binary STL file,
// combining the file extension with the structural size check. The result is
// always in [0,1]; unreadable or malformed files simply score low, they never
// produce an error.
func Probability(filename string) float64 {
	var probability float64
	if strings.HasSuffix(filename, ".stl") {
		probability = 1 - probIncorrectExtension
	} else {
		probability = probIncorrectExtension
	}

	if consistentFileSize(filename) {
		probability = 1 - (1-probability)*probCoincidentalSize
	} else {
		probability *= probCoincidentalSize
	}

	return probability
}

// consistentFileSize reports whether the file length matches the triangle
// count a binary STL file of that length would declare: exactly 84+50*N
// bytes. Files too short to hold the header and count never match; the count
// at offset 80 is only read once the length allows it.
func consistentFileSize(filename string) bool {
	file, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return false
	}
	size := info.Size()
	if size < minFileSize {
		return false
	}

	var count [4]byte
	if _, err := file.ReadAt(count[:], headerSize); err != nil {
		return false
	}
	declared := binary.LittleEndian.Uint32(count[:])

	return size == minFileSize+recordSize*int64(declared)
}
