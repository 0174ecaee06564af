// Package religion classifies channel listing entries as religious content.
//
// Two analyzers contribute evidence: a text analyzer scoring the entry's name,
// category, group and description against weighted keyword lists and phrase
// patterns, and a domain analyzer scoring the URL's host against a domain
// vocabulary. The classifier merges both into one verdict, boosting confidence
// when the signals corroborate each other.
package religion

import (
	"strings"

	"github.com/ignite/channel-curator/internal/channel"
)

// corroborationBoost multiplies confidence when the text and domain analyzers
// independently detect the same record.
const corroborationBoost = 1.2

// Classifier evaluates channel records against an immutable lexicon using
// fixed scoring weights. Safe for concurrent use.
type Classifier struct {
	lex *Lexicon
	w   Weights
}

// New builds a classifier from a lexicon and scoring weights.
func New(lex *Lexicon, w Weights) *Classifier {
	return &Classifier{lex: lex, w: w}
}

// NewDefault builds a classifier with the reference lexicon and weights.
func NewDefault() *Classifier {
	return New(DefaultLexicon(), DefaultWeights())
}

// Verdict is the merged classification of one record. Reasons and
// MatchedTerms are the set unions of both analyzers' trails, in stable order.
// The original record is retained for reporting.
type Verdict struct {
	Record       channel.Record
	IsFlagged    bool
	Confidence   float64
	Reasons      []string
	MatchedTerms []string
}

// Classify runs both analyzers over one record and merges their results.
// Either analyzer alone is sufficient to flag; when both detect
// independently, the confidence gets the corroboration boost. Absent or
// malformed fields degrade to empty strings, never to errors.
func (c *Classifier) Classify(rec channel.Record) Verdict {
	combined := strings.TrimSpace(rec.Name + " " + rec.Category + " " + rec.Group + " " + rec.Description)

	text := c.AnalyzeText(combined)
	domain := c.AnalyzeDomain(rec.URL)

	confidence := text.Confidence
	if domain.Confidence > confidence {
		confidence = domain.Confidence
	}
	if text.Detected && domain.Detected {
		confidence = clamp(confidence * corroborationBoost)
	}

	return Verdict{
		Record:       rec,
		IsFlagged:    text.Detected || domain.Detected,
		Confidence:   confidence,
		Reasons:      union(text.Reasons, domain.Reasons),
		MatchedTerms: union(text.MatchedTerms, domain.MatchedTerms),
	}
}

// union merges two string slices preserving first-seen order, dropping
// duplicates.
func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
