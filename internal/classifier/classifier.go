// Package classifier wraps a pre-trained forest model behind the detection
// pipeline's scoring call, degrading to a disabled no-op when the model
// artifact cannot be loaded.
package classifier

import (
	"fmt"
	"log"
	"sync/atomic"

	"NetSentry/internal/classifier/forest"
	"NetSentry/internal/feature"
	"NetSentry/internal/model"
)

// State is the lifecycle state of a Classifier. Ready and Disabled are both
// terminal; a Disabled classifier never retries loading.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateDisabled:
		return "disabled"
	}
	return "unknown"
}

// Classifier scores feature vectors with a pre-trained forest. After
// construction it is read-only and safe for concurrent use by any number of
// sessions.
type Classifier struct {
	state  atomic.Int32
	forest *forest.Forest
}

// New loads the model artifact at path. It never returns an error: a failed
// load yields a Disabled classifier, logged once here, and the surrounding
// system keeps running with detection off.
func New(path string) *Classifier {
	c := &Classifier{}
	c.state.Store(int32(StateLoading))

	f, err := forest.Load(path)
	if err != nil {
		log.Printf("ERROR: threat detection disabled: %v", err)
		c.state.Store(int32(StateDisabled))
		return c
	}

	log.Printf("Classifier ready: %d trees, %d classes, %d features", len(f.Trees), len(f.Classes), f.NumFeatures)
	c.forest = f
	c.state.Store(int32(StateReady))
	return c
}

// State reports the lifecycle state.
func (c *Classifier) State() State {
	return State(c.state.Load())
}

// Ready reports whether threat detection is active. False means the system
// runs with detection off, which is distinct from "no threats found".
func (c *Classifier) Ready() bool {
	return c.State() == StateReady
}

// Classify scores one feature vector. A Disabled classifier returns
// (nil, nil) for any input. A model that rejects the vector's shape returns
// (nil, error); the caller logs it, skips that event and continues, and the
// classifier stays Ready. Calls are independent: a failure on one event
// never affects the next.
func (c *Classifier) Classify(v feature.Vector) (*model.ClassificationResult, error) {
	return c.ClassifySlice(v.ToSlice())
}

// ClassifySlice scores an already-positional sample. Most callers want
// Classify; this entry point exists for pre-flattened vectors.
func (c *Classifier) ClassifySlice(sample []float64) (*model.ClassificationResult, error) {
	if c.State() != StateReady {
		return nil, nil
	}

	label, confidence, err := c.forest.Predict(sample)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	return &model.ClassificationResult{
		Label:      label,
		Confidence: confidence,
		IsThreat:   label != model.NormalLabel,
	}, nil
}
