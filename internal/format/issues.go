package format

// IssueLoad is a T-shirt size bucket for a repository's open issue count.
type IssueLoad string

const (
	IssueLoadNone   IssueLoad = "none"
	IssueLoadLow    IssueLoad = "low"
	IssueLoadMedium IssueLoad = "medium"
	IssueLoadHigh   IssueLoad = "high"
)

// IssueThresholds holds the upper bound (inclusive) of each bucket.
// Counts above High are IssueLoadHigh as well.
type IssueThresholds struct {
	None   int
	Low    int
	Medium int
}

// DefaultIssueThresholds are used when no thresholds are configured.
var DefaultIssueThresholds = IssueThresholds{
	None:   0,
	Low:    10,
	Medium: 100,
}

// ClassifyIssues buckets an issue count.
func ClassifyIssues(issues int, t IssueThresholds) IssueLoad {
	switch {
	case issues <= t.None:
		return IssueLoadNone
	case issues <= t.Low:
		return IssueLoadLow
	case issues <= t.Medium:
		return IssueLoadMedium
	default:
		return IssueLoadHigh
	}
}

// Glyph returns the scatter marker for the bucket; heavier marks mean
// more open issues.
func (l IssueLoad) Glyph() string {
	switch l {
	case IssueLoadLow:
		return "•"
	case IssueLoadMedium:
		return "●"
	case IssueLoadHigh:
		return "◉"
	default:
		return "·"
	}
}
