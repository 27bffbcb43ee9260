package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_Score(t *testing.T) {
	a := NewAnalyzer()

	positive := a.Score("This library is absolutely wonderful, I love it!")
	assert.Greater(t, positive.Polarity, 0.05)
	assert.Equal(t, LabelPositive, positive.Label())
	assert.Greater(t, positive.Subjectivity, 0.0)

	negative := a.Score("This is terrible, I hate everything about it.")
	assert.Less(t, negative.Polarity, -0.05)
	assert.Equal(t, LabelNegative, negative.Label())

	neutral := a.Score("The package was delivered on Tuesday.")
	assert.Equal(t, LabelNeutral, neutral.Label())
}

func TestAnalyzer_ScoreEmpty(t *testing.T) {
	a := NewAnalyzer()

	s := a.Score("")
	assert.Equal(t, LabelNeutral, s.Label())
	assert.InDelta(t, 0, s.Polarity, 0)
	assert.InDelta(t, 0, s.Subjectivity, 0)
}

func TestAnalyzer_ScoreAll(t *testing.T) {
	a := NewAnalyzer()

	scores := a.ScoreAll([]string{
		"Great product, highly recommended!",
		"Awful experience.",
	})

	assert.Len(t, scores, 2)
	assert.Equal(t, LabelPositive, scores[0].Label())
	assert.Equal(t, LabelNegative, scores[1].Label())
}

func TestScore_LabelThresholds(t *testing.T) {
	assert.Equal(t, LabelPositive, Score{Polarity: 0.05}.Label())
	assert.Equal(t, LabelNegative, Score{Polarity: -0.05}.Label())
	assert.Equal(t, LabelNeutral, Score{Polarity: 0.04}.Label())
	assert.Equal(t, LabelNeutral, Score{Polarity: -0.04}.Label())
}
