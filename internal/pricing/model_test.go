package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScaler_Valid(t *testing.T) {
	path := writeArtifact(t, "scaler.json",
		`{"mean":[1,2,3,4,5,6],"scale":[1,1,1,1,1,2]}`)

	s, err := LoadScaler(path)
	require.NoError(t, err)

	out := s.Transform([6]float64{1, 2, 3, 4, 5, 8})
	assert.Equal(t, [6]float64{0, 0, 0, 0, 0, 1}, out)
}

func TestLoadScaler_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"wrong feature count", `{"mean":[1,2],"scale":[1,1]}`},
		{"zero scale", `{"mean":[0,0,0,0,0,0],"scale":[1,1,0,1,1,1]}`},
		{"not json", `mean,scale`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeArtifact(t, "scaler.json", tc.content)
			_, err := LoadScaler(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadForest_Valid(t *testing.T) {
	path := writeArtifact(t, "model.json", `{"trees":[{
		"feature":[2,-2,-2],
		"threshold":[1.5,0,0],
		"left":[1,0,0],
		"right":[2,0,0],
		"value":[0,3.0,7.0]
	}]}`)

	f, err := LoadForest(path)
	require.NoError(t, err)
	require.Len(t, f.Trees, 1)

	assert.Equal(t, 3.0, f.Predict([6]float64{0, 0, 1.0, 0, 0, 0}))
	assert.Equal(t, 7.0, f.Predict([6]float64{0, 0, 2.0, 0, 0, 0}))
}

func TestLoadForest_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no trees", `{"trees":[]}`},
		{"empty tree", `{"trees":[{"feature":[],"threshold":[],"left":[],"right":[],"value":[]}]}`},
		{"mismatched arrays", `{"trees":[{"feature":[-2],"threshold":[0],"left":[0],"right":[0],"value":[1,2]}]}`},
		{"bad feature index", `{"trees":[{"feature":[9,-2,-2],"threshold":[0,0,0],"left":[1,0,0],"right":[2,0,0],"value":[0,1,2]}]}`},
		{"backward child pointer", `{"trees":[{"feature":[0,-2,-2],"threshold":[0,0,0],"left":[0,0,0],"right":[2,0,0],"value":[0,1,2]}]}`},
		{"not json", `[]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeArtifact(t, "model.json", tc.content)
			_, err := LoadForest(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadPredictor_ValidArtifacts(t *testing.T) {
	dir := t.TempDir()
	scalerPath := filepath.Join(dir, "scaler.json")
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(scalerPath,
		[]byte(`{"mean":[0,0,0,0,0,0],"scale":[1,1,1,1,1,1]}`), 0o644))
	require.NoError(t, os.WriteFile(modelPath,
		[]byte(`{"trees":[{"feature":[-2],"threshold":[0],"left":[0],"right":[0],"value":[4.2]}]}`), 0o644))

	p := LoadPredictor(modelPath, scalerPath)
	assert.Equal(t, "model", p.Mode())
}

func TestLoadPredictor_MalformedModelFallsBack(t *testing.T) {
	dir := t.TempDir()
	scalerPath := filepath.Join(dir, "scaler.json")
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(scalerPath,
		[]byte(`{"mean":[0,0,0,0,0,0],"scale":[1,1,1,1,1,1]}`), 0o644))
	require.NoError(t, os.WriteFile(modelPath, []byte(`{"trees":[]}`), 0o644))

	p := LoadPredictor(modelPath, scalerPath)
	assert.Equal(t, "formula", p.Mode())
}
