// Package filter partitions channel listings into kept and removed rows.
//
// Each stage is a flat per-row test; the religious stage wraps the
// classifier from the religion package. The driver walks rows in original
// order and routes each one to exactly one partition.
package filter

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignite/channel-curator/internal/channel"
)

// Stage decides whether one record is removed from the listing.
type Stage interface {
	Name() string
	Evaluate(rec channel.Record) (bool, Match)
}

// Match explains why a stage removed a record. Flat membership stages report
// confidence 1.0; the religious stage reports the classifier's verdict.
type Match struct {
	Confidence   float64
	Reasons      []string
	MatchedTerms []string
}

// Removal is one removed row together with the evidence that removed it.
type Removal struct {
	Row    []string
	Record channel.Record
	Match  Match
}

// Summary is the result of running one stage over a listing. KeptRows and
// Removals preserve the relative order of the input; every input row appears
// in exactly one of the two.
type Summary struct {
	RunID   string
	Stage   string
	Total   int
	Kept    int
	Removed int
	Elapsed time.Duration

	KeptRows [][]string
	Removals []Removal
}

// minFieldsToClassify is the column count below which a row is passed through
// unclassified. Rows without a usable name cannot be judged.
const minFieldsToClassify = 2

// Run applies one stage to all rows in original order. Degenerate rows with
// fewer than two columns are always kept without evaluation.
func Run(stage Stage, rows [][]string) *Summary {
	start := time.Now()
	sum := &Summary{
		RunID:    uuid.New().String(),
		Stage:    stage.Name(),
		KeptRows: make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		sum.Total++

		if len(row) < minFieldsToClassify {
			sum.KeptRows = append(sum.KeptRows, row)
			sum.Kept++
			continue
		}

		rec := channel.FromRow(row)
		remove, match := stage.Evaluate(rec)
		if remove {
			sum.Removals = append(sum.Removals, Removal{Row: row, Record: rec, Match: match})
			sum.Removed++
		} else {
			sum.KeptRows = append(sum.KeptRows, row)
			sum.Kept++
		}
	}

	sum.Elapsed = time.Since(start)
	return sum
}

// RemovedRows returns the raw rows of all removals, in original order.
func (s *Summary) RemovedRows() [][]string {
	rows := make([][]string, 0, len(s.Removals))
	for _, r := range s.Removals {
		rows = append(rows, r.Row)
	}
	return rows
}
