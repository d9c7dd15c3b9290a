// Package sentiment converts three-way probability distributions from an
// external classification model into labeled results.
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrModelUnavailable means the classification model is not initialized.
// It is terminal and non-retryable; it is never silently substituted with a
// neutral answer.
var ErrModelUnavailable = errors.New("sentiment model not available")

// Classifier yields a probability triple ordered (positive, negative,
// neutral), summing to ~1, for a text.
type Classifier interface {
	Probabilities(ctx context.Context, text string) ([3]float64, error)
}

var labels = [3]string{"positive", "negative", "neutral"}

// Scores holds the per-class probabilities, each rounded to 4 decimals.
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Result is one labeled classification.
type Result struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Scores     Scores  `json:"scores"`
}

// Analyzer normalizes classifier output for a batch of texts.
type Analyzer struct {
	classifier Classifier
}

// NewAnalyzer wraps a classifier. A nil classifier builds an analyzer whose
// calls all fail fast with ErrModelUnavailable.
func NewAnalyzer(c Classifier) *Analyzer {
	return &Analyzer{classifier: c}
}

// Available reports whether a classifier is wired in.
func (a *Analyzer) Available() bool {
	return a != nil && a.classifier != nil
}

// Analyze classifies each text in order. Any classification failure aborts
// the batch; there is no partial or default answer.
func (a *Analyzer) Analyze(ctx context.Context, texts []string) ([]Result, error) {
	if !a.Available() {
		return nil, ErrModelUnavailable
	}
	results := make([]Result, 0, len(texts))
	for _, text := range texts {
		probs, err := a.classifier.Probabilities(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}
		results = append(results, normalize(probs))
	}
	return results, nil
}

// normalize picks the highest-probability class. Ties resolve to the lowest
// index.
func normalize(p [3]float64) Result {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i] > p[best] {
			best = i
		}
	}
	return Result{
		Sentiment:  labels[best],
		Confidence: round4(p[best]),
		Scores: Scores{
			Positive: round4(p[0]),
			Negative: round4(p[1]),
			Neutral:  round4(p[2]),
		},
	}
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
