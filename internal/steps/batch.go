package steps

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// BatchResult is the output of a batch run.
type BatchResult struct {
	OK        bool         `yaml:"ok"              json:"ok"`
	Action    string       `yaml:"action"          json:"action"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
}

// Step is one batch entry: a single action name mapped to its parameters.
type Step map[string]map[string]interface{}

// ParseBatch decodes a YAML list of steps, e.g.
//
//   - launch: { wait: true, timeout: 90 }
//   - focus: {}
//   - shutdown: { power: sleep, delay: 60 }
func ParseBatch(data []byte) ([]Step, error) {
	var raw []Step
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list of actions")
	}
	return raw, nil
}

// RunBatch executes steps in order. With stopOnError the first failing step
// ends the batch.
func RunBatch(ctx context.Context, c Controller, batch []Step, stopOnError bool) BatchResult {
	out := BatchResult{Action: "do", Steps: len(batch), Results: make([]StepResult, 0, len(batch))}
	hasFailure := false

	for i, step := range batch {
		stepNum := i + 1

		var result StepResult
		if len(step) != 1 {
			result = StepResult{Error: fmt.Sprintf("expected exactly one action key, got %d", len(step))}
		} else {
			for action, params := range step {
				result = Execute(ctx, c, action, params)
			}
		}
		result.Step = stepNum
		out.Results = append(out.Results, result)

		if result.OK {
			out.Completed++
			continue
		}
		hasFailure = true
		if stopOnError {
			out.Error = fmt.Sprintf("step %d: %s", stepNum, result.Error)
			break
		}
	}

	out.OK = !hasFailure
	return out
}
