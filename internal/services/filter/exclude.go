package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"nockpoint/internal/domain"
)

// ExcludeFilter hides events whose title or type matches an exclude pattern.
type ExcludeFilter struct {
	patterns []*regexp.Regexp
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for exclude filter")
	}

	compiledPatterns := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		compiledPatterns = append(compiledPatterns, compiled)
	}

	return &ExcludeFilter{
		patterns: compiledPatterns,
		logger:   logger,
	}, nil
}

// ShouldExclude returns true if name matches any exclude pattern.
func (f *ExcludeFilter) ShouldExclude(name string) bool {
	for _, pattern := range f.patterns {
		if pattern.MatchString(name) {
			f.logger.Debug("Excluding by pattern",
				"name", name,
				"pattern", pattern.String())
			return true
		}
	}
	return false
}

// New returns an ExcludeFilter for patterns, or a NoOpFilter when there are none.
func New(patterns []string, logger *slog.Logger) (domain.EventFilter, error) {
	if len(patterns) == 0 {
		return NewNoOpFilter(), nil
	}
	return NewExcludeFilter(patterns, logger)
}

// Events drops the events filter excludes by title or by type.
func Events(events []domain.Event, filter domain.EventFilter) []domain.Event {
	kept := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if filter.ShouldExclude(event.Title) || filter.ShouldExclude(event.EventType) {
			continue
		}
		kept = append(kept, event)
	}
	return kept
}
