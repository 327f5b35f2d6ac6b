// Package gh wraps the slice of the GitHub Actions API the checker consumes.
package gh

import (
	"context"
	"fmt"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// Client is a thin wrapper around the go-github client. It performs no
// retries; failures propagate to the caller as-is.
type Client struct {
	gh *github.Client
}

// NewClient creates a GitHub API client authenticated with the given token.
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{gh: github.NewClient(tc)}
}

// GetWorkflow fetches a workflow by its file name.
func (c *Client) GetWorkflow(ctx context.Context, owner, repo, fileName string) (*github.Workflow, error) {
	workflow, _, err := c.gh.Actions.GetWorkflowByFileName(ctx, owner, repo, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow %s in %s/%s: %w", fileName, owner, repo, err)
	}
	return workflow, nil
}

// LatestScheduledRun returns the most recent schedule-triggered run of a
// workflow, or nil when the workflow has never run on a schedule. Runs are
// returned newest-first by the API, so a single page of one is enough.
func (c *Client) LatestScheduledRun(ctx context.Context, owner, repo string, workflowID int64) (*github.WorkflowRun, error) {
	runs, _, err := c.gh.Actions.ListWorkflowRunsByID(ctx, owner, repo, workflowID, &github.ListWorkflowRunsOptions{
		Event:       "schedule",
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled runs for workflow %d in %s/%s: %w", workflowID, owner, repo, err)
	}
	if len(runs.WorkflowRuns) == 0 {
		return nil, nil
	}
	return runs.WorkflowRuns[0], nil
}
