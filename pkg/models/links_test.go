package models

import (
	"strings"
	"testing"

	"github.com/google/go-github/v50/github"
)

func TestOutputURL(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name: "ok result uses run url verbatim",
			result: Result{
				Repo:         "acme/app",
				WorkflowName: "ci.yml",
				Status:       StatusOK,
				LastScheduledRun: &github.WorkflowRun{
					HTMLURL: github.String("https://github.com/acme/app/actions/runs/42"),
				},
			},
			want: "https://github.com/acme/app/actions/runs/42",
		},
		{
			name: "failed result uses run url verbatim",
			result: Result{
				Repo:         "acme/app",
				WorkflowName: "ci.yml",
				Status:       StatusFailed,
				LastScheduledRun: &github.WorkflowRun{
					HTMLURL: github.String("https://github.com/acme/app/actions/runs/43"),
				},
			},
			want: "https://github.com/acme/app/actions/runs/43",
		},
		{
			name: "inactive result derives workflows page url",
			result: Result{
				Repo:         "acme/app",
				WorkflowName: "ci.yml",
				Status:       StatusInactivated,
				Workflow: &github.Workflow{
					HTMLURL: github.String("https://github.com/acme/app/blob/main/.github/workflows/ci.yml"),
					Path:    github.String(".github/workflows/ci.yml"),
				},
			},
			want: "https://github.com/acme/app/actions/workflows/ci.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.OutputURL(); got != tt.want {
				t.Errorf("OutputURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestOutputURLMismatch tests the soft failure when the workflow's html_url
// does not line up with its path: the result is a diagnostic string that
// embeds the unusable URL, not a derived link.
func TestOutputURLMismatch(t *testing.T) {
	result := Result{
		Repo:   "acme/app",
		Status: StatusInactivated,
		Workflow: &github.Workflow{
			HTMLURL: github.String("https://example.com/elsewhere/ci.yml"),
			Path:    github.String(".github/workflows/ci.yml"),
		},
	}

	got := result.OutputURL()
	if !strings.Contains(got, "https://example.com/elsewhere/ci.yml") {
		t.Errorf("diagnostic %q does not embed the offending html_url", got)
	}
	if strings.HasPrefix(got, "https://github.com/acme/app/actions/workflows/") {
		t.Errorf("mismatched urls must not produce a derived link, got %q", got)
	}
}
