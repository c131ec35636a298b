package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nockpoint/internal/domain"
	"nockpoint/internal/testutil"
)

func TestNewExcludeFilter_Success(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
	}{
		{
			name:     "single pattern",
			patterns: []string{"^Beginners"},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"^Beginners", "(?i)social$", "beginners_course"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewExcludeFilter(tt.patterns, testutil.Logger())

			require.NoError(t, err)
			assert.NotNil(t, filter)
			assert.Len(t, filter.patterns, len(tt.patterns))
		})
	}
}

func TestNewExcludeFilter_EmptyPatterns(t *testing.T) {
	filter, err := NewExcludeFilter(nil, testutil.Logger())

	require.Error(t, err)
	assert.Nil(t, filter)
	assert.Contains(t, err.Error(), "no patterns provided for exclude filter")
}

func TestNewExcludeFilter_InvalidPattern(t *testing.T) {
	filter, err := NewExcludeFilter([]string{"valid", "[invalid"}, testutil.Logger())

	require.Error(t, err)
	assert.Nil(t, filter)
	assert.Contains(t, err.Error(), `invalid regex pattern "[invalid"`)
}

func TestExcludeFilter_ShouldExclude(t *testing.T) {
	filter, err := NewExcludeFilter([]string{"^Beginners", "(?i)social$"}, testutil.Logger())
	require.NoError(t, err)

	tests := []struct {
		name     string
		expected bool
	}{
		{"Beginners Course Week 1", true},
		{"Summer Social", true},
		{"Club SOCIAL", true},
		{"Summer Shoot", false},
		{"Advanced Beginners", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.ShouldExclude(tt.name))
		})
	}
}

func TestNoOpFilter(t *testing.T) {
	filter := NewNoOpFilter()
	assert.False(t, filter.ShouldExclude("anything"))
	assert.False(t, filter.ShouldExclude(""))
}

func TestNew(t *testing.T) {
	f, err := New(nil, testutil.Logger())
	require.NoError(t, err)
	assert.IsType(t, &NoOpFilter{}, f)

	f, err = New([]string{"x"}, testutil.Logger())
	require.NoError(t, err)
	assert.IsType(t, &ExcludeFilter{}, f)
}

func TestEvents(t *testing.T) {
	filter, err := NewExcludeFilter([]string{"^beginners_course$", "Social"}, testutil.Logger())
	require.NoError(t, err)

	events := []domain.Event{
		{ID: 1, Title: "Summer Shoot", EventType: "competition"},
		{ID: 2, Title: "Intro", EventType: "beginners_course"},
		{ID: 3, Title: "Club Social", EventType: "social"},
	}

	kept := Events(events, filter)
	require.Len(t, kept, 1)
	assert.Equal(t, 1, kept[0].ID)

	assert.Len(t, Events(events, NewNoOpFilter()), 3)
	assert.NotNil(t, Events(nil, filter))
}
