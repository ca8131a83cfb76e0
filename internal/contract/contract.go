// Package contract holds the behavioral scenarios shared by both workflow
// implementations and the drivers that run them.
package contract

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation names accepted in scenario steps
const (
	OpAddText       = "add_text"
	OpRequestReview = "request_review"
	OpApprove       = "approve"
	OpReject        = "reject"
	OpContent       = "content"
)

//go:embed scenarios.yaml
var builtinScenarios []byte

// Driver is the uniform surface a scenario is played against
type Driver interface {
	AddText(s string)
	RequestReview()
	Approve()
	Reject()
	Content() string
	Phase() string
}

// Step is one operation and the observations expected after it
type Step struct {
	Op     string  `yaml:"op"`
	Text   string  `yaml:"text,omitempty"`
	Expect *string `yaml:"expect,omitempty"`
	Phase  string  `yaml:"phase,omitempty"`
}

// Scenario is a named sequence of steps starting from an empty draft
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// StepError reports the first step whose observation did not match
type StepError struct {
	Scenario string
	Index    int
	Op       string
	Field    string
	Want     string
	Got      string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("scenario %q step %d (%s): %s = %q, want %q",
		e.Scenario, e.Index, e.Op, e.Field, e.Got, e.Want)
}

// Load decodes a YAML list of scenarios and validates their operations
func Load(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	if err := yaml.NewDecoder(r).Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}

	for _, sc := range scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario without name")
		}
		for i, step := range sc.Steps {
			switch step.Op {
			case OpAddText, OpRequestReview, OpApprove, OpReject, OpContent:
			default:
				return nil, fmt.Errorf("scenario %q step %d: unknown op %q", sc.Name, i, step.Op)
			}
		}
	}
	return scenarios, nil
}

// LoadFile reads scenarios from a YAML file
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Builtin returns the scenarios shipped with the package
func Builtin() []Scenario {
	var scenarios []Scenario
	if err := yaml.Unmarshal(builtinScenarios, &scenarios); err != nil {
		panic(fmt.Sprintf("contract: embedded scenarios are invalid: %v", err))
	}
	return scenarios
}

// Run plays the scenario against d and returns the first mismatch
func Run(d Driver, sc Scenario) error {
	for i, step := range sc.Steps {
		switch step.Op {
		case OpAddText:
			d.AddText(step.Text)
		case OpRequestReview:
			d.RequestReview()
		case OpApprove:
			d.Approve()
		case OpReject:
			d.Reject()
		case OpContent:
		default:
			return fmt.Errorf("scenario %q step %d: unknown op %q", sc.Name, i, step.Op)
		}

		if step.Expect != nil {
			if got := d.Content(); got != *step.Expect {
				return &StepError{Scenario: sc.Name, Index: i, Op: step.Op, Field: "content", Want: *step.Expect, Got: got}
			}
		}
		if step.Phase != "" {
			if got := d.Phase(); got != step.Phase {
				return &StepError{Scenario: sc.Name, Index: i, Op: step.Op, Field: "phase", Want: step.Phase, Got: got}
			}
		}
	}
	return nil
}
