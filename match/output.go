package match

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output is the serialized probability report: both rosters in index order
// plus the n×n probability matrix (row = man, column = woman). The JSON shape
// is the tool's stable on-disk format.
type Output struct {
	Men           []string    `json:"men"`
	Women         []string    `json:"women"`
	Probabilities [][]float64 `json:"probabilities"`
}

// NewOutput derives the probability report for a Problem from an enumeration
// Result. When the Result is infeasible every probability is 0.0; surfacing
// that diagnostic is the caller's concern.
func NewOutput(p *Problem, res Result) Output {
	return Output{
		Men:           p.Men(),
		Women:         p.Women(),
		Probabilities: res.Probabilities(),
	}
}

// WriteFile serializes the report as 2-space-indented JSON.
func (o Output) WriteFile(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("match: %w", err)
	}

	return nil
}

// ReadOutput loads a previously written report.
func ReadOutput(path string) (Output, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Output{}, fmt.Errorf("match: %w", err)
	}
	var o Output
	if err = json.Unmarshal(data, &o); err != nil {
		return Output{}, fmt.Errorf("match: invalid report %s: %w", path, err)
	}

	return o, nil
}
