// Package format picks the right importer for a model file.
//
// Every registered importer scores the file with a probability estimate and
// the most confident one decodes it. Sniffing never requires a full decode.
package format

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/meshimport/internal/logger"
	"github.com/philipparndt/meshimport/pkg/model"
	"github.com/philipparndt/meshimport/pkg/stl"
)

// ErrUnrecognized is returned by Import when no importer reaches the
// requested confidence for a file.
var ErrUnrecognized = errors.New("file format not recognized")

// Importer detects and decodes one supported model file format.
type Importer interface {
	// Name returns a short human-readable format name.
	Name() string
	// Probability estimates how likely the named file is this format,
	// as a value in [0,1]. It must not error on malformed input.
	Probability(filename string) float64
	// Import decodes the named file into a generic model.
	Import(filename string) (*model.Model, error)
}

type binarySTL struct{}

func (binarySTL) Name() string { return "binary STL" }

func (binarySTL) Probability(filename string) float64 {
	return stl.Probability(filename)
}

func (binarySTL) Import(filename string) (*model.Model, error) {
	return stl.Decode(filename)
}

// Importers returns all registered importers.
func Importers() []Importer {
	return []Importer{binarySTL{}}
}

// Detect returns the importer most likely to match the named file, with its
// probability estimate.
func Detect(filename string) (Importer, float64) {
	var best Importer
	bestProbability := -1.0

	for _, imp := range Importers() {
		p := imp.Probability(filename)
		logger.Debug("format probability",
			zap.String("file", filename),
			zap.String("format", imp.Name()),
			zap.Float64("probability", p))
		if p > bestProbability {
			best = imp
			bestProbability = p
		}
	}

	return best, bestProbability
}

// Import detects the format of the named file and decodes it. Files whose
// best probability is below minProbability are rejected with ErrUnrecognized
// so callers can tell "unknown format" apart from I/O failure.
func Import(filename string, minProbability float64) (*model.Model, error) {
	imp, probability := Detect(filename)
	if probability < minProbability {
		return nil, fmt.Errorf("%w: %s (best guess %s at %.6f)",
			ErrUnrecognized, filename, imp.Name(), probability)
	}

	logger.Info("importing model",
		zap.String("file", filename),
		zap.String("format", imp.Name()))
	return imp.Import(filename)
}
