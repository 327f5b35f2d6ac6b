package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/younsl/workflow-health-checker/pkg/models"
)

var statusStyles = map[models.Status]lipgloss.Style{
	models.StatusOK:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	models.StatusInactivated: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	models.StatusFailed:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// ColorRenderer prints one colored line per result as it arrives, then a
// summary with links to anything inactive or failing.
type ColorRenderer struct {
	w       io.Writer
	results []models.Result
}

// NewColorRenderer creates a ColorRenderer writing to w.
func NewColorRenderer(w io.Writer) *ColorRenderer {
	return &ColorRenderer{w: w}
}

// Consume prints the result's status line immediately and retains the
// result for the summary.
func (r *ColorRenderer) Consume(result models.Result) error {
	r.results = append(r.results, result)
	label := statusStyles[result.Status].Render(result.Status.Label())
	_, err := fmt.Fprintf(r.w, "%s: %s: %s\n", result.Repo, result.WorkflowName, label)
	return err
}

// Finish prints the per-status counts and the link sections for inactive
// and failed workflows. The exit code is 1 exactly when either of those
// sets is non-empty.
func (r *ColorRenderer) Finish() (int, error) {
	set := models.Aggregate(r.results)

	_, err := fmt.Fprintf(r.w, "\nChecked %d workflows. %s %s %s\n",
		set.Total(),
		statusStyles[models.StatusOK].Render(fmt.Sprintf("%d passing.", len(set[models.StatusOK]))),
		statusStyles[models.StatusInactivated].Render(fmt.Sprintf("%d inactive.", len(set[models.StatusInactivated]))),
		statusStyles[models.StatusFailed].Render(fmt.Sprintf("%d failing.", len(set[models.StatusFailed]))),
	)
	if err != nil {
		return 0, err
	}

	if inactives := set[models.StatusInactivated]; len(inactives) > 0 {
		fmt.Fprintf(r.w, "\nLINKS TO INACTIVE WORKFLOWS\n")
		for _, result := range inactives {
			fmt.Fprintf(r.w, "* %s:%s page:\n  %s\n", result.Repo, result.WorkflowName, result.OutputURL())
		}
	}

	if failed := set[models.StatusFailed]; len(failed) > 0 {
		fmt.Fprintf(r.w, "\nLINKS TO FAILED RUNS\n")
		for _, result := range failed {
			fmt.Fprintf(r.w, "* %s:%s failure:\n  %s\n", result.Repo, result.WorkflowName, result.OutputURL())
		}
	}

	if len(set[models.StatusFailed]) > 0 || len(set[models.StatusInactivated]) > 0 {
		return 1, nil
	}
	return 0, nil
}
