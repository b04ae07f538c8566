// internal/pricing/predictor.go
package pricing

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// Predictor turns a feature vector into a raw price estimate. The
// variant is chosen once at startup and never changes for the life of
// the process. The base price travels alongside the features because
// the fallback formula is anchored on it; the trained model ignores it.
type Predictor interface {
	// Predict returns the raw (pre-clip) price for the given features.
	Predict(f domain.FeatureVector, basePrice float64) (float64, error)
	// Mode names the active variant ("model" or "formula").
	Mode() string
}

// Fallback formula weights: demand pushes price up, excess inventory
// pushes it down.
const (
	demandWeight    = 0.3
	inventoryWeight = 0.2
)

// FormulaPredictor is the closed-form substitute used when no trained
// model is available. It is pure and total for non-negative stock and
// sales counters.
type FormulaPredictor struct{}

func (FormulaPredictor) Predict(f domain.FeatureVector, basePrice float64) (float64, error) {
	return basePrice * (1 + demandWeight*f.DemandRatio - inventoryWeight*f.InventoryLevel), nil
}

func (FormulaPredictor) Mode() string { return "formula" }

// ModelPredictor standardizes the features with the scaler statistics
// fit at training time, then evaluates the tree ensemble.
type ModelPredictor struct {
	scaler *Scaler
	forest *Forest
}

func (m *ModelPredictor) Predict(f domain.FeatureVector, _ float64) (float64, error) {
	scaled := m.scaler.Transform(f.Values())
	return m.forest.Predict(scaled), nil
}

func (m *ModelPredictor) Mode() string { return "model" }

// LoadPredictor assembles the startup predictor. Missing artifacts are
// not fatal: the process continues in formula mode, which is logged so
// operators can tell the modes apart. Malformed artifacts degrade the
// same way.
func LoadPredictor(modelPath, scalerPath string) Predictor {
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		log.Warn().Err(err).Str("path", scalerPath).Msg("scaler unavailable, using fallback formula")
		return FormulaPredictor{}
	}

	forest, err := LoadForest(modelPath)
	if err != nil {
		log.Warn().Err(err).Str("path", modelPath).Msg("pricing model unavailable, using fallback formula")
		return FormulaPredictor{}
	}

	log.Info().Int("trees", len(forest.Trees)).Msg("pricing model loaded")
	return &ModelPredictor{scaler: scaler, forest: forest}
}

// NewModelPredictor wires a predictor from already-validated artifacts.
func NewModelPredictor(scaler *Scaler, forest *Forest) (*ModelPredictor, error) {
	if scaler == nil || forest == nil {
		return nil, fmt.Errorf("%w: scaler and forest are both required", domain.ErrInvalidInput)
	}
	return &ModelPredictor{scaler: scaler, forest: forest}, nil
}
