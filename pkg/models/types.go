package models

import (
	"fmt"

	"github.com/google/go-github/v50/github"
)

// Status classifies the health of a single scheduled workflow.
type Status int

const (
	// StatusOK means the workflow is active and its latest scheduled run succeeded.
	StatusOK Status = iota
	// StatusInactivated means the workflow is disabled on GitHub.
	StatusInactivated
	// StatusFailed means the latest scheduled run did not conclude with success.
	StatusFailed
)

// Statuses returns every Status value in display order.
func Statuses() []Status {
	return []Status{StatusOK, StatusInactivated, StatusFailed}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInactivated:
		return "INACTIVATED"
	case StatusFailed:
		return "FAILED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Label returns the short form printed on report lines.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInactivated:
		return "INACTIVE"
	case StatusFailed:
		return "FAIL"
	}
	return s.String()
}

// Result records the health of one configured workflow. The Workflow and
// LastScheduledRun handles are owned by the GitHub client and only read for
// URL derivation. LastScheduledRun is non-nil exactly when Status is not
// StatusInactivated.
type Result struct {
	Repo             string
	WorkflowName     string
	Status           Status
	Workflow         *github.Workflow
	LastScheduledRun *github.WorkflowRun
}

// ResultSet groups results by status. All three status keys are always
// present and each group preserves encounter order.
type ResultSet map[Status][]Result

// Aggregate partitions results by status. The partition is stable: within
// each group the input order is kept.
func Aggregate(results []Result) ResultSet {
	set := make(ResultSet, len(Statuses()))
	for _, s := range Statuses() {
		set[s] = []Result{}
	}
	for _, r := range results {
		set[r.Status] = append(set[r.Status], r)
	}
	return set
}

// Total returns the number of results across all statuses.
func (rs ResultSet) Total() int {
	total := 0
	for _, group := range rs {
		total += len(group)
	}
	return total
}
