package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EvaluationMetrics is the held-out evaluation of the classifier, produced
// at training time and echoed back unchanged on prediction responses.
type EvaluationMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
}

type scalerParams struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// classifierBundle is the on-disk shape of the exported model: a multinomial
// logistic regression with one coefficient row per class, optional
// standardization parameters and optional evaluation metrics.
type classifierBundle struct {
	ModelVersion string             `json:"model_version"`
	Classes      []string           `json:"classes"`
	Features     []string           `json:"features"`
	Scaler       *scalerParams      `json:"scaler"`
	Coefficients [][]float64        `json:"coefficients"`
	Intercepts   []float64          `json:"intercepts"`
	Metrics      *EvaluationMetrics `json:"metrics"`
}

// Classifier scores a fixed-order feature vector into a stock-status class.
// It is loaded once at startup and read-only afterwards.
type Classifier struct {
	version    string
	classes    []string
	features   []string
	mean       []float64
	scale      []float64
	weights    *mat.Dense
	intercepts *mat.VecDense
	metrics    *EvaluationMetrics
}

// LoadClassifier reads and validates a model bundle. Any failure here is
// fatal to the process: the service cannot run without a model.
func LoadClassifier(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}

	var bundle classifierBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("decode model bundle: %w", err)
	}

	nClasses := len(bundle.Classes)
	nFeatures := len(bundle.Features)
	if nClasses < 2 {
		return nil, fmt.Errorf("model bundle declares %d classes, need at least 2", nClasses)
	}
	if nFeatures == 0 {
		return nil, fmt.Errorf("model bundle declares no features")
	}
	if len(bundle.Coefficients) != nClasses {
		return nil, fmt.Errorf("coefficient rows = %d, want %d", len(bundle.Coefficients), nClasses)
	}
	if len(bundle.Intercepts) != nClasses {
		return nil, fmt.Errorf("intercepts = %d, want %d", len(bundle.Intercepts), nClasses)
	}

	weights := mat.NewDense(nClasses, nFeatures, nil)
	for i, row := range bundle.Coefficients {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("coefficient row %d has %d values, want %d", i, len(row), nFeatures)
		}
		weights.SetRow(i, row)
	}

	clf := &Classifier{
		version:    bundle.ModelVersion,
		classes:    bundle.Classes,
		features:   bundle.Features,
		weights:    weights,
		intercepts: mat.NewVecDense(nClasses, bundle.Intercepts),
		metrics:    bundle.Metrics,
	}

	if bundle.Scaler != nil {
		if len(bundle.Scaler.Mean) != nFeatures || len(bundle.Scaler.Scale) != nFeatures {
			return nil, fmt.Errorf("scaler dimensions do not match %d features", nFeatures)
		}
		for i, s := range bundle.Scaler.Scale {
			if s == 0 {
				return nil, fmt.Errorf("scaler scale[%d] is zero", i)
			}
		}
		clf.mean = bundle.Scaler.Mean
		clf.scale = bundle.Scaler.Scale
	}

	return clf, nil
}

// Predict returns the winning class index and the full softmax probability
// vector for one feature vector. Feature order is part of the model contract.
func (c *Classifier) Predict(features []float64) (int, []float64, error) {
	if len(features) != len(c.features) {
		return 0, nil, fmt.Errorf("feature vector has %d values, model expects %d", len(features), len(c.features))
	}

	x := make([]float64, len(features))
	copy(x, features)
	if c.mean != nil {
		for i := range x {
			x[i] = (x[i] - c.mean[i]) / c.scale[i]
		}
	}

	var logits mat.VecDense
	logits.MulVec(c.weights, mat.NewVecDense(len(x), x))
	logits.AddVec(&logits, c.intercepts)

	z := logits.RawVector().Data
	lse := floats.LogSumExp(z)
	probs := make([]float64, len(z))
	for i, v := range z {
		probs[i] = math.Exp(v - lse)
	}

	return floats.MaxIdx(probs), probs, nil
}

// NumFeatures is the length of the feature vector the model was trained on.
func (c *Classifier) NumFeatures() int { return len(c.features) }

func (c *Classifier) Version() string { return c.version }

func (c *Classifier) Classes() []string { return c.classes }

// Metrics returns the embedded evaluation metrics, or nil when the bundle
// was exported without them.
func (c *Classifier) Metrics() *EvaluationMetrics { return c.metrics }
