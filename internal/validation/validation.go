package validation

import (
	"fmt"
	"strings"
)

// IssueType classifies a validation finding
type IssueType string

const (
	IssueOutOfRange          IssueType = "out_of_range"
	IssueInvalidEnum         IssueType = "invalid_enum"
	IssueUnknownChallenge    IssueType = "unknown_challenge"
	IssueDuplicateChallenge  IssueType = "duplicate_challenge"
	IssueProgressTooLong     IssueType = "progress_too_long"
	IssueInvalidProgress     IssueType = "invalid_progress_value"
	IssueInconsistentState   IssueType = "inconsistent_state"
	IssueUnknownBadge        IssueType = "unknown_badge"
	IssueDuplicateBadge      IssueType = "duplicate_badge"
	IssueMissingUnlockedTime IssueType = "missing_unlocked_at"
)

// Issue is a single validation finding
type Issue struct {
	Type        IssueType
	Field       string // dotted path or record id the issue refers to
	Description string
}

// Result collects the issues found by one or more checks
type Result struct {
	Issues []Issue
}

func (r *Result) add(i Issue) {
	r.Issues = append(r.Issues, i)
}

// Merge appends the issues of other
func (r *Result) Merge(other Result) {
	r.Issues = append(r.Issues, other.Issues...)
}

// HasIssues returns true if anything was reported
func (r Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Error joins the issue descriptions, for returning a Result as an error
func (r Result) Error() string {
	descs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		descs[i] = issue.Description
	}
	return strings.Join(descs, "; ")
}

// FormatReport returns a human-readable report of all issues
func (r Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	var b strings.Builder
	b.WriteString("Issues detected:\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "- [%s] %s\n", issue.Type, issue.Description)
	}
	return b.String()
}

// Validator checks habit input and persisted state
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}
