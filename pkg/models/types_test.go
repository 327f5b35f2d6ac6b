package models

import (
	"testing"
)

// TestAggregate tests that results are partitioned by status with encounter
// order preserved inside each group.
func TestAggregate(t *testing.T) {
	results := []Result{
		{Repo: "acme/app", WorkflowName: "ci.yml", Status: StatusOK},
		{Repo: "acme/app", WorkflowName: "nightly.yml", Status: StatusFailed},
		{Repo: "acme/lib", WorkflowName: "ci.yml", Status: StatusOK},
		{Repo: "acme/lib", WorkflowName: "release.yml", Status: StatusInactivated},
		{Repo: "acme/tools", WorkflowName: "audit.yml", Status: StatusFailed},
	}

	set := Aggregate(results)

	if got, want := set.Total(), len(results); got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}

	for _, status := range Statuses() {
		if _, ok := set[status]; !ok {
			t.Errorf("missing status key %s", status)
		}
	}

	wantOK := []string{"acme/app:ci.yml", "acme/lib:ci.yml"}
	wantFailed := []string{"acme/app:nightly.yml", "acme/tools:audit.yml"}
	wantInactive := []string{"acme/lib:release.yml"}

	checkGroup(t, set[StatusOK], wantOK)
	checkGroup(t, set[StatusFailed], wantFailed)
	checkGroup(t, set[StatusInactivated], wantInactive)
}

func checkGroup(t *testing.T, group []Result, want []string) {
	t.Helper()
	if len(group) != len(want) {
		t.Fatalf("group has %d results, want %d", len(group), len(want))
	}
	for i, r := range group {
		got := r.Repo + ":" + r.WorkflowName
		if got != want[i] {
			t.Errorf("group[%d] = %s, want %s", i, got, want[i])
		}
	}
}

// TestAggregateEmpty tests that all status keys exist even with no input.
func TestAggregateEmpty(t *testing.T) {
	set := Aggregate(nil)

	if set.Total() != 0 {
		t.Errorf("Total() = %d, want 0", set.Total())
	}
	for _, status := range Statuses() {
		group, ok := set[status]
		if !ok {
			t.Fatalf("missing status key %s", status)
		}
		if group == nil || len(group) != 0 {
			t.Errorf("group for %s = %v, want empty non-nil slice", status, group)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	tests := []struct {
		status Status
		name   string
		label  string
	}{
		{StatusOK, "OK", "OK"},
		{StatusInactivated, "INACTIVATED", "INACTIVE"},
		{StatusFailed, "FAILED", "FAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}
