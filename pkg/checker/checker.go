// Package checker classifies the health of configured scheduled workflows.
package checker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v50/github"
	"github.com/sirupsen/logrus"

	"github.com/younsl/workflow-health-checker/internal/config"
	"github.com/younsl/workflow-health-checker/pkg/models"
)

// workflowStateActive is the state GitHub reports for enabled workflows.
const workflowStateActive = "active"

// ErrNoScheduledRuns is returned when an active workflow has no
// schedule-triggered run to judge it by.
var ErrNoScheduledRuns = errors.New("workflow has no scheduled runs")

// WorkflowAPI is the slice of the GitHub API the checker consumes.
type WorkflowAPI interface {
	GetWorkflow(ctx context.Context, owner, repo, fileName string) (*github.Workflow, error)
	LatestScheduledRun(ctx context.Context, owner, repo string, workflowID int64) (*github.WorkflowRun, error)
}

// Checker walks a workflow spec and produces a health Result per workflow.
type Checker struct {
	api WorkflowAPI
}

// New creates a Checker backed by the given API client.
func New(api WorkflowAPI) *Checker {
	return &Checker{api: api}
}

// Classify maps a workflow's state and latest scheduled run to a Status.
// Non-active workflows classify as inactivated without a run. Active
// workflows require a run, and its conclusion decides between OK and FAILED.
// The returned run is non-nil exactly when the status is not inactivated.
func Classify(state string, lastScheduledRun *github.WorkflowRun) (models.Status, *github.WorkflowRun, error) {
	if state != workflowStateActive {
		return models.StatusInactivated, nil, nil
	}
	if lastScheduledRun == nil {
		return 0, nil, ErrNoScheduledRuns
	}
	if lastScheduledRun.GetConclusion() == "success" {
		return models.StatusOK, lastScheduledRun, nil
	}
	return models.StatusFailed, lastScheduledRun, nil
}

// CheckAll checks every configured workflow, repository by repository in
// spec order, and streams each Result to fn as soon as it is computed.
// Remote calls are sequential and blocking. A remote failure or an fn error
// aborts the walk immediately.
func (c *Checker) CheckAll(ctx context.Context, spec *config.WorkflowSpec, fn func(models.Result) error) error {
	for _, repo := range spec.Repos {
		owner, name, err := splitRepo(repo.Repo)
		if err != nil {
			return err
		}
		for _, workflowName := range repo.Workflows {
			result, err := c.checkWorkflow(ctx, owner, name, repo.Repo, workflowName)
			if err != nil {
				return fmt.Errorf("%s:%s: %w", repo.Repo, workflowName, err)
			}
			if err := fn(result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Checker) checkWorkflow(ctx context.Context, owner, name, fullRepo, workflowName string) (models.Result, error) {
	logrus.WithFields(logrus.Fields{
		"repo":     fullRepo,
		"workflow": workflowName,
	}).Debug("Checking workflow")

	workflow, err := c.api.GetWorkflow(ctx, owner, name, workflowName)
	if err != nil {
		return models.Result{}, err
	}

	// Disabled workflows have no meaningful run history; only fetch runs
	// for active ones.
	var run *github.WorkflowRun
	if workflow.GetState() == workflowStateActive {
		run, err = c.api.LatestScheduledRun(ctx, owner, name, workflow.GetID())
		if err != nil {
			return models.Result{}, err
		}
	}

	status, run, err := Classify(workflow.GetState(), run)
	if err != nil {
		return models.Result{}, err
	}

	return models.Result{
		Repo:             fullRepo,
		WorkflowName:     workflowName,
		Status:           status,
		Workflow:         workflow,
		LastScheduledRun: run,
	}, nil
}

func splitRepo(full string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: want owner/name", full)
	}
	return owner, name, nil
}
