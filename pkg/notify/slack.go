// Package notify posts run summaries to external channels.
package notify

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/younsl/workflow-health-checker/pkg/models"
)

// SlackNotifier posts a one-line run summary to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
}

// NewSlackNotifier creates a notifier for the given webhook URL.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{webhookURL: webhookURL}
}

// Notify sends the per-status counts for a finished run.
func (n *SlackNotifier) Notify(set models.ResultSet) error {
	if n.webhookURL == "" {
		return fmt.Errorf("invalid configuration: missing Slack webhook URL")
	}

	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("Workflow health: checked %d workflows (%d passing, %d inactive, %d failing)",
			set.Total(),
			len(set[models.StatusOK]),
			len(set[models.StatusInactivated]),
			len(set[models.StatusFailed]),
		),
	}
	if err := slack.PostWebhook(n.webhookURL, msg); err != nil {
		return fmt.Errorf("failed to post Slack webhook: %w", err)
	}

	logrus.WithField("total", set.Total()).Info("Posted run summary to Slack")
	return nil
}
