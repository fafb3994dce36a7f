package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIssues(t *testing.T) {
	tests := []struct {
		name     string
		issues   int
		expected IssueLoad
		glyph    string
	}{
		{"no issues", 0, IssueLoadNone, "·"},
		{"low lower bound", 1, IssueLoadLow, "•"},
		{"low upper bound", 10, IssueLoadLow, "•"},
		{"medium", 55, IssueLoadMedium, "●"},
		{"high", 101, IssueLoadHigh, "◉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIssues(tt.issues, DefaultIssueThresholds)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.glyph, got.Glyph())
		})
	}
}
