package forest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(class int) *Node {
	return &Node{Leaf: true, Class: class}
}

func split(feature int, threshold float64, left, right *Node) *Node {
	return &Node{Feature: feature, Threshold: threshold, Left: left, Right: right}
}

// testForest votes "neptune" on two of three trees when feature 0 > 0.5.
func testForest() *Forest {
	return &Forest{
		Classes:     []string{"normal", "neptune"},
		NumFeatures: 3,
		Trees: []*Node{
			split(0, 0.5, leaf(0), leaf(1)),
			split(0, 0.5, leaf(0), split(2, 10, leaf(1), leaf(0))),
			leaf(0),
		},
	}
}

func TestPredict(t *testing.T) {
	f := testForest()

	tests := []struct {
		name           string
		sample         []float64
		wantLabel      string
		wantConfidence float64
	}{
		{
			name:           "all trees agree",
			sample:         []float64{0, 0, 0},
			wantLabel:      "normal",
			wantConfidence: 1.0,
		},
		{
			name:           "majority votes neptune",
			sample:         []float64{1, 0, 5},
			wantLabel:      "neptune",
			wantConfidence: 2.0 / 3.0,
		},
		{
			name:           "deep split flips the second tree back",
			sample:         []float64{1, 0, 50},
			wantLabel:      "normal",
			wantConfidence: 2.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence, err := f.Predict(tt.sample)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantConfidence, confidence, 1e-12)
		})
	}
}

func TestPredictProba(t *testing.T) {
	f := testForest()

	probs, err := f.PredictProba([]float64{1, 0, 5})
	require.NoError(t, err)
	require.Len(t, probs, 2)

	assert.InDelta(t, 1.0/3.0, probs[0], 1e-12)
	assert.InDelta(t, 2.0/3.0, probs[1], 1e-12)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-12)
}

func TestPredictShapeMismatch(t *testing.T) {
	f := testForest()

	_, err := f.PredictProba([]float64{1, 2})
	require.ErrorIs(t, err, ErrShape)

	_, _, err = f.Predict([]float64{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrShape)

	_, err = f.PredictProba(nil)
	require.ErrorIs(t, err, ErrShape)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.gob")

	original := testForest()
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.Classes, loaded.Classes)
	assert.Equal(t, original.NumFeatures, loaded.NumFeatures)

	for _, sample := range [][]float64{{0, 0, 0}, {1, 0, 5}, {1, 0, 50}} {
		wantLabel, wantConfidence, err := original.Predict(sample)
		require.NoError(t, err)
		gotLabel, gotConfidence, err := loaded.Predict(sample)
		require.NoError(t, err)
		assert.Equal(t, wantLabel, gotLabel)
		assert.Equal(t, wantConfidence, gotConfidence)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.gob"))
		assert.Error(t, err)
	})

	t.Run("corrupt artifact", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.gob")
		require.NoError(t, os.WriteFile(path, []byte("not a gob artifact"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("no trees", func(t *testing.T) {
		path := filepath.Join(dir, "empty.gob")
		f := &Forest{Classes: []string{"normal"}, NumFeatures: 3}
		require.NoError(t, f.Save(path))
		_, err := Load(path)
		assert.ErrorContains(t, err, "no trees")
	})

	t.Run("split feature out of range", func(t *testing.T) {
		path := filepath.Join(dir, "badsplit.gob")
		f := &Forest{
			Classes:     []string{"normal", "neptune"},
			NumFeatures: 2,
			Trees:       []*Node{split(5, 0.5, leaf(0), leaf(1))},
		}
		require.NoError(t, f.Save(path))
		_, err := Load(path)
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("leaf class out of range", func(t *testing.T) {
		path := filepath.Join(dir, "badleaf.gob")
		f := &Forest{
			Classes:     []string{"normal"},
			NumFeatures: 2,
			Trees:       []*Node{leaf(7)},
		}
		require.NoError(t, f.Save(path))
		_, err := Load(path)
		assert.ErrorContains(t, err, "out of range")
	})
}
