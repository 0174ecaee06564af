package filter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ignite/channel-curator/internal/channel"
	"github.com/ignite/channel-curator/internal/religion"
)

var (
	// ErrNoStages is returned when a pipeline is run with no stages.
	ErrNoStages = errors.New("no filter stages configured")

	// ErrUnknownStage is returned for a stage name outside the known set.
	ErrUnknownStage = errors.New("unknown filter stage")
)

// StagesByName resolves an ordered list of stage names. The religious stage
// uses the supplied classifier and threshold; the other stages are flat
// predicates.
func StagesByName(names []string, clf *religion.Classifier, threshold float64) ([]Stage, error) {
	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "bitel":
			stages = append(stages, BitelStage{})
		case "geo":
			stages = append(stages, GeoStage{})
		case "pluto":
			stages = append(stages, PlutoStage{})
		case "political":
			stages = append(stages, PoliticalStage{})
		case "religious":
			stages = append(stages, NewReligiousStage(clf, threshold))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
		}
	}
	return stages, nil
}

// Pipeline runs an ordered sequence of stages over one listing file. Each
// stage consumes the previous stage's kept rows; per stage it writes the kept
// table and the removed-entries report, both in the input's encoding and row
// order. Outputs are only written after the whole batch is classified, so a
// failed run leaves no partial table behind.
type Pipeline struct {
	Stages    []Stage
	OutputDir string
	Backup    bool
	Log       zerolog.Logger
}

// Run processes the listing at inputPath through every stage and returns the
// per-stage summaries in order. A missing input or an unwritable output
// aborts the run.
func (p *Pipeline) Run(inputPath string) ([]*Summary, error) {
	if len(p.Stages) == 0 {
		return nil, ErrNoStages
	}

	rows, err := channel.ReadRows(inputPath)
	if err != nil {
		return nil, err
	}

	if p.Backup {
		if err := backupFile(inputPath); err != nil {
			return nil, err
		}
	}

	// The classifier core is header-agnostic; the header row, when present,
	// is held out here and replayed into every output table.
	var header []string
	if len(rows) > 0 && channel.LooksLikeHeader(rows[0]) {
		header, rows = rows[0], rows[1:]
	}

	outDir := p.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	summaries := make([]*Summary, 0, len(p.Stages))
	for _, stage := range p.Stages {
		sum := Run(stage, rows)
		summaries = append(summaries, sum)

		p.Log.Info().
			Str("run_id", sum.RunID).
			Str("stage", sum.Stage).
			Int("total", sum.Total).
			Int("kept", sum.Kept).
			Int("removed", sum.Removed).
			Dur("elapsed", sum.Elapsed).
			Msg("stage complete")

		for _, rm := range sum.Removals {
			p.Log.Debug().
				Str("stage", sum.Stage).
				Str("name", rm.Record.Name).
				Float64("confidence", rm.Match.Confidence).
				Strs("reasons", rm.Match.Reasons).
				Strs("terms", rm.Match.MatchedTerms).
				Msg("entry removed")
		}

		keptPath := filepath.Join(outDir, "no_"+sum.Stage+".csv")
		removedPath := filepath.Join(outDir, "removed_"+sum.Stage+".csv")
		if err := channel.WriteRows(keptPath, withHeader(header, sum.KeptRows)); err != nil {
			return summaries, err
		}
		if err := channel.WriteRows(removedPath, withHeader(header, sum.RemovedRows())); err != nil {
			return summaries, err
		}

		rows = sum.KeptRows
	}

	return summaries, nil
}

func withHeader(header []string, rows [][]string) [][]string {
	if header == nil {
		return rows
	}
	out := make([][]string, 0, len(rows)+1)
	out = append(out, header)
	return append(out, rows...)
}

// backupFile copies a file next to itself with a timestamp suffix.
func backupFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open for backup: %w", err)
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	dst, err := os.Create(backupPath)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("write backup: %w", err)
	}
	return dst.Close()
}
