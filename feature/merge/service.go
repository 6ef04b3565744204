package merge

import (
	"fmt"

	"register-reconciler/core/highlight"
	"register-reconciler/core/revision"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report summarizes a completed reconciliation run.
type Report struct {
	RunID      string
	Rows       int
	Flagged    int
	OutputPath string
}

type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Run executes the full pipeline: read the input workbooks, merge them on
// the reference columns, apply the configured validators and title match,
// run the revision reconciler per row, and write the styled output.
func (s *Service) Run(cfg *RunConfig) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID))

	paths := make([]string, len(cfg.Inputs))
	refColumns := make([]string, len(cfg.Inputs))
	titleColumns := make([]string, len(cfg.Inputs))
	for i, input := range cfg.Inputs {
		paths[i] = input.Path
		refColumns[i] = input.RefColumn
		titleColumns[i] = input.TitleColumn
	}

	log.Info("reading input workbooks", zap.Int("count", len(paths)))
	tables, meta, err := ReadWorkbooks(paths, refColumns)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	merged, err := MergeTables(tables, refColumns, titleColumns)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	log.Info("merged inputs", zap.Int("rows", merged.Len()))

	ApplyValidators(merged, cfg.Checks)
	AddTitleMatch(merged, titleColumns)

	revHighlights := make(highlight.Map)
	settings := cfg.Revision.Settings()
	if settings.Enabled() {
		checker, err := revision.NewChecker(settings)
		if err != nil {
			return nil, fmt.Errorf("revision settings: %w", err)
		}
		if !merged.HasColumn(revision.ColComments) {
			merged.AddColumn(revision.ColComments)
		}
		for r, row := range merged.Rows {
			result := checker.CheckRow(row)
			row.Set(revision.ColComments, result.Comments)
			for column, segments := range result.Highlights {
				revHighlights.Add(r, column, segments)
			}
		}
		log.Info("revision check complete")
	}

	flagged := 0
	for _, row := range merged.Rows {
		if row.Get(ColChecks) != "" || row.Get(revision.ColComments) != "" {
			flagged++
		}
	}

	if err := WriteStyled(cfg.Output, merged, meta, titleColumns, cfg.Checks, revHighlights); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	log.Info("wrote output", zap.String("path", cfg.Output), zap.Int("flagged", flagged))

	return &Report{
		RunID:      runID,
		Rows:       merged.Len(),
		Flagged:    flagged,
		OutputPath: cfg.Output,
	}, nil
}
