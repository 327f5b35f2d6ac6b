package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/younsl/workflow-health-checker/pkg/models"
)

type workflowInfo struct {
	Repo         string `json:"repo"`
	WorkflowName string `json:"workflow_name"`
	URL          string `json:"url"`
}

// JSONRenderer buffers the full result stream and emits one JSON document
// keyed by status name, each entry carrying repo, workflow name and the
// resolved URL in encounter order.
//
// Unlike ColorRenderer, it exits 0 regardless of the results; machine
// consumers read the document, not the exit code.
type JSONRenderer struct {
	w       io.Writer
	results []models.Result
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

// Consume buffers the result; nothing is written until Finish.
func (r *JSONRenderer) Consume(result models.Result) error {
	r.results = append(r.results, result)
	return nil
}

// Finish emits the document and returns exit code 0.
func (r *JSONRenderer) Finish() (int, error) {
	set := models.Aggregate(r.results)

	doc := make(map[string][]workflowInfo, len(set))
	for _, status := range models.Statuses() {
		infos := make([]workflowInfo, 0, len(set[status]))
		for _, result := range set[status] {
			infos = append(infos, workflowInfo{
				Repo:         result.Repo,
				WorkflowName: result.WorkflowName,
				URL:          result.OutputURL(),
			})
		}
		doc[status.String()] = infos
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := fmt.Fprintln(r.w, string(data)); err != nil {
		return 0, err
	}
	return 0, nil
}
