package scenario

import (
	"github.com/shinji-kodama/fleetload/internal/model"
	"github.com/shinji-kodama/fleetload/internal/ship"
)

// Result summarizes a scenario run.
type Result struct {
	Scenario string        `json:"scenario"`
	Blocks   []BlockResult `json:"blocks"`

	// Ships is the final state of every ship.
	Ships []ship.Snapshot `json:"ships"`

	// Containers is the final state of every container, in manifest order.
	Containers []ContainerState `json:"containers"`
}

// BlockResult is the outcome of one block.
type BlockResult struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`

	// StepsRun counts the steps that succeeded.
	StepsRun int `json:"stepsRun"`

	// FailedStep is the index of the step that aborted the block, or -1.
	FailedStep   int    `json:"failedStep"`
	FailedAction Action `json:"failedAction,omitempty"`
	Error        string `json:"error,omitempty"`

	// Ships is the state of every ship when the block ended.
	Ships []ship.Snapshot `json:"ships"`

	err error
}

// Err returns the error that aborted the block, or nil.
func (b BlockResult) Err() error {
	return b.err
}

// ContainerState is the final state of a container.
type ContainerState struct {
	ID           string              `json:"id"`
	SerialNumber string              `json:"serialNumber"`
	Kind         model.ContainerKind `json:"kind"`
	LoadWeight   float64             `json:"loadWeight"`

	// Ship is the name of the carrying ship, empty when ashore.
	Ship string `json:"ship,omitempty"`
}

// Failed returns the blocks that were aborted.
func (r *Result) Failed() []BlockResult {
	var failed []BlockResult
	for _, b := range r.Blocks {
		if !b.Completed {
			failed = append(failed, b)
		}
	}
	return failed
}

// HasFailures reports whether any block was aborted.
func (r *Result) HasFailures() bool {
	return len(r.Failed()) > 0
}
