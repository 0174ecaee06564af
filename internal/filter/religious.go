package filter

import (
	"github.com/ignite/channel-curator/internal/channel"
	"github.com/ignite/channel-curator/internal/religion"
)

// DefaultThreshold is the confidence a religious verdict must reach for the
// row to be removed.
const DefaultThreshold = 0.5

// ReligiousStage removes entries the religion classifier flags with enough
// confidence.
type ReligiousStage struct {
	clf       *religion.Classifier
	threshold float64
}

// NewReligiousStage wraps a classifier as a filter stage. A threshold of 0
// falls back to DefaultThreshold.
func NewReligiousStage(clf *religion.Classifier, threshold float64) *ReligiousStage {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &ReligiousStage{clf: clf, threshold: threshold}
}

func (s *ReligiousStage) Name() string { return "religious" }

// Evaluate classifies the record and removes it only when the verdict is
// flagged and its confidence reaches the threshold.
func (s *ReligiousStage) Evaluate(rec channel.Record) (bool, Match) {
	v := s.clf.Classify(rec)
	if !v.IsFlagged || v.Confidence < s.threshold {
		return false, Match{}
	}
	return true, Match{
		Confidence:   v.Confidence,
		Reasons:      v.Reasons,
		MatchedTerms: v.MatchedTerms,
	}
}
