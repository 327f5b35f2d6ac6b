// Package report renders workflow health results to an output stream.
package report

import "github.com/younsl/workflow-health-checker/pkg/models"

// Renderer consumes a stream of results and produces the process exit code.
// Consume is called once per result in check order, while the check is still
// running; Finish is called after the stream ends. Whether a renderer prints
// incrementally or buffers the whole stream is its own choice.
type Renderer interface {
	Consume(models.Result) error
	Finish() (int, error)
}
