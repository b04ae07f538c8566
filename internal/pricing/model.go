// internal/pricing/model.go
package pricing

// Artifact loading for the offline-trained predictor. The trainer
// exports two JSON files: scaler statistics (per-feature mean and
// scale) and the regression forest flattened into parallel arrays per
// tree. This file is the inference side of that contract; training
// itself happens elsewhere.

import (
	"encoding/json"
	"fmt"
	"os"
)

// numFeatures is the fixed width of the feature vector: demand_ratio,
// inventory_level, sales_trend, popularity, scarcity, day.
const numFeatures = 6

// leafMarker is the feature index stored on leaf nodes.
const leafMarker = -2

// Scaler standardizes features to the distribution seen at training
// time (zero mean, unit variance per feature).
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform applies the standardization to one feature vector.
func (s *Scaler) Transform(values [6]float64) [6]float64 {
	var out [6]float64
	for i := range values {
		out[i] = (values[i] - s.Mean[i]) / s.Scale[i]
	}
	return out
}

func (s *Scaler) validate() error {
	if len(s.Mean) != numFeatures || len(s.Scale) != numFeatures {
		return fmt.Errorf("scaler expects %d features, got mean=%d scale=%d",
			numFeatures, len(s.Mean), len(s.Scale))
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler has zero scale for feature %d", i)
		}
	}
	return nil
}

// LoadScaler reads and validates scaler statistics from a JSON file.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scaler: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Tree is one regression tree in flattened array form: node i splits on
// Feature[i] at Threshold[i], descending to Left[i] or Right[i]. Leaf
// nodes carry Feature[i] == leafMarker and their prediction in Value[i].
type Tree struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

func (t *Tree) predict(values [6]float64) float64 {
	node := 0
	for t.Feature[node] != leafMarker {
		if values[t.Feature[node]] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return t.Value[node]
}

func (t *Tree) validate(idx int) error {
	n := len(t.Feature)
	if n == 0 {
		return fmt.Errorf("tree %d is empty", idx)
	}
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("tree %d has mismatched array lengths", idx)
	}
	for node := 0; node < n; node++ {
		f := t.Feature[node]
		if f == leafMarker {
			continue
		}
		if f < 0 || f >= numFeatures {
			return fmt.Errorf("tree %d node %d references feature %d", idx, node, f)
		}
		// Children must move strictly forward so evaluation terminates.
		if t.Left[node] <= node || t.Left[node] >= n || t.Right[node] <= node || t.Right[node] >= n {
			return fmt.Errorf("tree %d node %d has out-of-range children", idx, node)
		}
	}
	return nil
}

// Forest is the tree ensemble; its prediction is the mean of the
// per-tree outputs.
type Forest struct {
	Trees []Tree `json:"trees"`
}

// Predict evaluates every tree on the scaled features and averages.
func (f *Forest) Predict(values [6]float64) float64 {
	sum := 0.0
	for i := range f.Trees {
		sum += f.Trees[i].predict(values)
	}
	return sum / float64(len(f.Trees))
}

// LoadForest reads and validates the tree ensemble from a JSON file.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model has no trees")
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(i); err != nil {
			return nil, err
		}
	}
	return &f, nil
}
