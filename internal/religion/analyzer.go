package religion

import (
	"strings"

	"github.com/ignite/channel-curator/internal/urlx"
)

// Reason tags attached to signal results. The vocabulary is fixed; reports
// and tests match on these literals.
const (
	ReasonHighPrecision = "high_precision_keywords"
	ReasonPattern       = "pattern_match"
	ReasonContext       = "context_keywords"
	ReasonDomain        = "religious_domain"
	ReasonSubdomain     = "religious_subdomain"
)

// Weights holds the scoring constants of the classifier. The defaults are
// empirically tuned reference values; they are exposed for tuning, not
// derived.
type Weights struct {
	HighPrecision float64 // per matching high-precision term
	Pattern       float64 // per pattern with at least one match
	Context       float64 // per matching context term, gated on a primary signal
	Domain        float64 // per domain term found in the full host
	Subdomain     float64 // per host label equal to a domain term

	TextThreshold   float64 // detection bar for text analysis
	DomainThreshold float64 // detection bar for domain analysis, deliberately higher
}

// DefaultWeights returns the reference scoring constants.
func DefaultWeights() Weights {
	return Weights{
		HighPrecision:   0.8,
		Pattern:         0.6,
		Context:         0.3,
		Domain:          0.9,
		Subdomain:       0.7,
		TextThreshold:   0.5,
		DomainThreshold: 0.6,
	}
}

// SignalResult is the outcome of one analyzer pass over one record.
// Confidence is clamped to [0, 1]; Reasons and MatchedTerms behave as sets
// with stable insertion order.
type SignalResult struct {
	Detected     bool
	Confidence   float64
	Reasons      []string
	MatchedTerms []string
}

// AnalyzeText scores free text against the lexicon's keyword lists and
// patterns. Empty or whitespace-only text yields a zero result.
func (c *Classifier) AnalyzeText(text string) SignalResult {
	var res SignalResult
	if strings.TrimSpace(text) == "" {
		return res
	}

	lower := strings.ToLower(text)

	primary := false
	for _, term := range c.lex.HighPrecision {
		if strings.Contains(lower, term) {
			res.MatchedTerms = append(res.MatchedTerms, term)
			res.Confidence += c.w.HighPrecision
			primary = true
		}
	}
	if primary {
		res.Reasons = append(res.Reasons, ReasonHighPrecision)
	}

	patternHit := false
	for _, pat := range c.lex.Patterns {
		matches := pat.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		res.MatchedTerms = append(res.MatchedTerms, matches...)
		res.Confidence += c.w.Pattern
		patternHit = true
	}
	if patternHit {
		res.Reasons = append(res.Reasons, ReasonPattern)
	}

	// Context terms never originate a signal, they only amplify one.
	if primary || patternHit {
		contextHit := false
		for _, term := range c.lex.Context {
			if strings.Contains(lower, term) {
				res.MatchedTerms = append(res.MatchedTerms, term)
				res.Confidence += c.w.Context
				contextHit = true
			}
		}
		if contextHit {
			res.Reasons = append(res.Reasons, ReasonContext)
		}
	}

	res.Confidence = clamp(res.Confidence)
	res.Detected = res.Confidence >= c.w.TextThreshold
	return res
}

// AnalyzeDomain scores the host of a URL against the domain term list, at
// full-host and label granularity. An empty or unextractable host yields a
// zero result.
func (c *Classifier) AnalyzeDomain(rawURL string) SignalResult {
	var res SignalResult

	host := urlx.ExtractDomain(rawURL)
	if host == "" {
		return res
	}

	domainHit := false
	for _, term := range c.lex.Domains {
		if strings.Contains(host, term) {
			res.MatchedTerms = append(res.MatchedTerms, term)
			res.Confidence += c.w.Domain
			domainHit = true
		}
	}
	if domainHit {
		res.Reasons = append(res.Reasons, ReasonDomain)
	}

	labelHit := false
	for _, label := range strings.Split(host, ".") {
		for _, term := range c.lex.Domains {
			if label == term {
				res.MatchedTerms = append(res.MatchedTerms, label)
				res.Confidence += c.w.Subdomain
				labelHit = true
				break
			}
		}
	}
	if labelHit {
		res.Reasons = append(res.Reasons, ReasonSubdomain)
	}

	res.Confidence = clamp(res.Confidence)
	res.Detected = res.Confidence >= c.w.DomainThreshold
	return res
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
