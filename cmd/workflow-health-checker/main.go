package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/younsl/workflow-health-checker/internal/config"
	"github.com/younsl/workflow-health-checker/pkg/checker"
	"github.com/younsl/workflow-health-checker/pkg/gh"
	"github.com/younsl/workflow-health-checker/pkg/logger"
	"github.com/younsl/workflow-health-checker/pkg/models"
	"github.com/younsl/workflow-health-checker/pkg/notify"
	"github.com/younsl/workflow-health-checker/pkg/report"
	"github.com/younsl/workflow-health-checker/pkg/version"
)

type options struct {
	specPath        string
	token           string
	jsonOutput      bool
	slackWebhookURL string
	showVersion     bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	code, err := run(opts, os.Stdout)
	if err != nil {
		logrus.WithError(err).Error("Workflow health check failed")
		os.Exit(1)
	}
	os.Exit(code)
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("workflow-health-checker", flag.ContinueOnError)
	fs.StringVar(&opts.token, "token", "",
		"GitHub personal access token; overrides the spec file token, with GITHUB_TOKEN as the fallback")
	fs.BoolVar(&opts.jsonOutput, "json", false,
		"emit a JSON report instead of the colored summary")
	fs.StringVar(&opts.slackWebhookURL, "slack-webhook-url", os.Getenv("SLACK_WEBHOOK_URL"),
		"Slack incoming webhook URL to post the run summary to")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.showVersion {
		return opts, nil
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("usage: workflow-health-checker [flags] <workflows.yaml>")
	}
	opts.specPath = fs.Arg(0)
	return opts, nil
}

func run(opts *options, stdout io.Writer) (int, error) {
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Get())
		return 0, nil
	}

	if err := logger.Init(config.EnvWithDefault("LOG_LEVEL", "info")); err != nil {
		return 0, err
	}
	logrus.WithField("build", version.Get().String()).Debug("Starting workflow health check")

	spec, err := config.LoadSpec(opts.specPath)
	if err != nil {
		return 0, err
	}

	token, err := config.ResolveToken(opts.token, spec)
	if err != nil {
		return 0, err
	}

	chk := checker.New(gh.NewClient(token))
	renderer := initializeRenderer(opts, stdout)

	// The Slack summary needs its own copy of the stream since renderers
	// own the results they consume.
	var collected []models.Result
	consume := renderer.Consume
	if opts.slackWebhookURL != "" {
		consume = func(result models.Result) error {
			collected = append(collected, result)
			return renderer.Consume(result)
		}
	}

	if err := chk.CheckAll(context.Background(), spec, consume); err != nil {
		return 0, err
	}

	code, err := renderer.Finish()
	if err != nil {
		return 0, err
	}

	if opts.slackWebhookURL != "" {
		notifier := notify.NewSlackNotifier(opts.slackWebhookURL)
		if err := notifier.Notify(models.Aggregate(collected)); err != nil {
			logrus.WithError(err).Warn("Failed to post Slack summary")
		}
	}

	return code, nil
}

func initializeRenderer(opts *options, stdout io.Writer) report.Renderer {
	if opts.jsonOutput {
		return report.NewJSONRenderer(stdout)
	}
	return report.NewColorRenderer(stdout)
}
