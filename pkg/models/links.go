package models

import (
	"fmt"
	"strings"
)

// OutputURL returns a browsable link for the result.
//
// OK and FAILED results link to the run's own HTML URL. Disabled workflows
// have no run, and the API exposes no runs-page URL for them, so the link is
// derived from the workflow's blob URL and file path. The prefix/suffix
// check is the only validation the API allows here; when it fails the
// returned text is a human-readable diagnostic rather than a URL.
func (r Result) OutputURL() string {
	if r.Status != StatusInactivated {
		return r.LastScheduledRun.GetHTMLURL()
	}

	htmlURL := r.Workflow.GetHTMLURL()
	path := r.Workflow.GetPath()
	prefix := fmt.Sprintf("https://github.com/%s/blob", r.Repo)
	if !strings.HasPrefix(htmlURL, prefix) || !strings.HasSuffix(htmlURL, path) {
		return "Unable to get actions URL for action at:\n  " + htmlURL
	}

	segments := strings.Split(path, "/")
	file := segments[len(segments)-1]
	return fmt.Sprintf("https://github.com/%s/actions/workflows/%s", r.Repo, file)
}
