// Package sentiment scores raw text for polarity and subjectivity using the
// VADER sentiment lexicon (via govader). Lexicon-based scoring needs no
// training data and works well on short, informal text.
package sentiment

import (
	"github.com/jonreiter/govader"
)

// Label classifies a score into one of three polarity classes.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Score is the polarity/subjectivity pair for one piece of text.
type Score struct {
	// Polarity is the normalized compound score in [-1, 1]; negative values
	// indicate negative sentiment.
	Polarity float64

	// Subjectivity is the share of the text carrying sentiment at all,
	// in [0, 1]; derived as 1 minus the neutral proportion.
	Subjectivity float64

	// Positive, Negative and Neutral are the raw valence proportions.
	Positive float64
	Negative float64
	Neutral  float64
}

// Label classifies the score using the conventional VADER compound
// thresholds: >= 0.05 positive, <= -0.05 negative, neutral otherwise.
func (s Score) Label() Label {
	switch {
	case s.Polarity >= 0.05:
		return LabelPositive
	case s.Polarity <= -0.05:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Analyzer scores text against the VADER lexicon. It is stateless between
// calls; construct once and reuse.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates an Analyzer with the bundled English lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vader: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score rates a single piece of text. Empty input yields the zero Score,
// which labels as neutral.
func (a *Analyzer) Score(text string) Score {
	if text == "" {
		return Score{Neutral: 1}
	}

	s := a.vader.PolarityScores(text)

	return Score{
		Polarity:     s.Compound,
		Subjectivity: 1 - s.Neutral,
		Positive:     s.Positive,
		Negative:     s.Negative,
		Neutral:      s.Neutral,
	}
}

// ScoreAll rates each text independently, preserving order.
func (a *Analyzer) ScoreAll(texts []string) []Score {
	scores := make([]Score, len(texts))
	for i, text := range texts {
		scores[i] = a.Score(text)
	}
	return scores
}
