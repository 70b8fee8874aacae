// Package forest evaluates serialized random-forest classifiers. Artifacts
// are gob-encoded trees trained offline; this package only runs inference.
package forest

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// ErrShape reports a sample whose width does not match the trained schema.
var ErrShape = errors.New("feature count mismatch")

// Node is one decision node. Leaf nodes carry a class index; internal nodes
// route on sample[Feature] <= Threshold.
type Node struct {
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
	Leaf      bool
	Class     int
}

// Forest is a trained random-forest classifier. It is read-only after Load
// and safe for concurrent Predict calls.
type Forest struct {
	Classes     []string // class index to label
	NumFeatures int
	Trees       []*Node
}

// Predict returns the majority-vote label for sample and the fraction of
// trees that voted for it.
func (f *Forest) Predict(sample []float64) (string, float64, error) {
	probs, err := f.PredictProba(sample)
	if err != nil {
		return "", 0, err
	}
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return f.Classes[best], probs[best], nil
}

// PredictProba returns per-class vote fractions, indexed like Classes.
func (f *Forest) PredictProba(sample []float64) ([]float64, error) {
	if len(sample) != f.NumFeatures {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrShape, len(sample), f.NumFeatures)
	}

	votes := make([]float64, len(f.Classes))
	for _, root := range f.Trees {
		votes[evalTree(root, sample)]++
	}
	total := float64(len(f.Trees))
	for i := range votes {
		votes[i] /= total
	}
	return votes, nil
}

func evalTree(n *Node, sample []float64) int {
	for !n.Leaf {
		if sample[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Class
}

// Save writes the forest to path as a gob artifact.
func (f *Forest) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(f); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// Load reads a forest artifact from path and validates its structure, so
// Predict never walks a malformed tree.
func Load(path string) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	var f Forest
	if err := gob.NewDecoder(file).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if len(f.Classes) == 0 {
		return errors.New("no classes")
	}
	if f.NumFeatures <= 0 {
		return errors.New("non-positive feature count")
	}
	if len(f.Trees) == 0 {
		return errors.New("no trees")
	}
	for i, root := range f.Trees {
		if err := validateNode(root, f.NumFeatures, len(f.Classes)); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

func validateNode(n *Node, numFeatures, numClasses int) error {
	if n == nil {
		return errors.New("nil node")
	}
	if n.Leaf {
		if n.Class < 0 || n.Class >= numClasses {
			return fmt.Errorf("leaf class %d out of range", n.Class)
		}
		return nil
	}
	if n.Feature < 0 || n.Feature >= numFeatures {
		return fmt.Errorf("split feature %d out of range", n.Feature)
	}
	if err := validateNode(n.Left, numFeatures, numClasses); err != nil {
		return err
	}
	return validateNode(n.Right, numFeatures, numClasses)
}
