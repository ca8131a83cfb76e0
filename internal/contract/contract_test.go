package contract_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anggasct/docflow"
	"github.com/anggasct/docflow/internal/contract"
	"github.com/anggasct/docflow/pkg/observers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drivers() map[string]func() contract.Driver {
	return map[string]func() contract.Driver{
		"dynamic":   func() contract.Driver { return contract.NewDocumentDriver() },
		"typestate": func() contract.Driver { return contract.NewTypestateDriver() },
	}
}

func TestBuiltinScenarios(t *testing.T) {
	scenarios := contract.Builtin()
	require.NotEmpty(t, scenarios)

	for name, newDriver := range drivers() {
		t.Run(name, func(t *testing.T) {
			for _, sc := range scenarios {
				t.Run(sc.Name, func(t *testing.T) {
					assert.NoError(t, contract.Run(newDriver(), sc))
				})
			}
		})
	}
}

func TestBuiltinScenarios_NoValidationViolations(t *testing.T) {
	for _, sc := range contract.Builtin() {
		validation := observers.NewValidationObserver()
		driver := contract.NewDocumentDriver(docflow.WithObserver(validation))

		require.NoError(t, contract.Run(driver, sc))
		assert.Empty(t, validation.GetViolations(), sc.Name)
	}
}

func TestDriversAgreeStepByStep(t *testing.T) {
	for _, sc := range contract.Builtin() {
		dynamic := contract.NewDocumentDriver()
		typed := contract.NewTypestateDriver()

		for i, step := range sc.Steps {
			single := contract.Scenario{Name: sc.Name, Steps: []contract.Step{{Op: step.Op, Text: step.Text}}}
			require.NoError(t, contract.Run(dynamic, single))
			require.NoError(t, contract.Run(typed, single))

			assert.Equal(t, dynamic.Content(), typed.Content(), "%s step %d", sc.Name, i)
			assert.Equal(t, dynamic.Phase(), typed.Phase(), "%s step %d", sc.Name, i)
		}
	}
}

func TestRun_ReportsMismatch(t *testing.T) {
	want := "visible"
	sc := contract.Scenario{
		Name: "premature content",
		Steps: []contract.Step{
			{Op: contract.OpAddText, Text: "visible"},
			{Op: contract.OpRequestReview, Expect: &want},
		},
	}

	err := contract.Run(contract.NewDocumentDriver(), sc)

	var stepErr *contract.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Index)
	assert.Equal(t, "content", stepErr.Field)
	assert.Equal(t, "", stepErr.Got)
	assert.Contains(t, err.Error(), "premature content")
}

func TestRun_ReportsPhaseMismatch(t *testing.T) {
	sc := contract.Scenario{
		Name:  "wrong phase",
		Steps: []contract.Step{{Op: contract.OpApprove, Phase: "published"}},
	}

	err := contract.Run(contract.NewTypestateDriver(), sc)

	var stepErr *contract.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "phase", stepErr.Field)
	assert.Equal(t, "draft", stepErr.Got)
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		input := `
- name: quick publish
  steps:
    - op: add_text
      text: hi
    - op: request_review
    - op: approve
      expect: hi
`
		scenarios, err := contract.Load(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, scenarios, 1)
		require.Len(t, scenarios[0].Steps, 3)
		assert.Nil(t, scenarios[0].Steps[0].Expect)
		require.NotNil(t, scenarios[0].Steps[2].Expect)
		assert.Equal(t, "hi", *scenarios[0].Steps[2].Expect)
	})

	t.Run("empty expectation is kept", func(t *testing.T) {
		scenarios, err := contract.Load(strings.NewReader("- name: x\n  steps:\n    - op: content\n      expect: \"\"\n"))
		require.NoError(t, err)
		require.NotNil(t, scenarios[0].Steps[0].Expect)
		assert.Equal(t, "", *scenarios[0].Steps[0].Expect)
	})

	t.Run("unknown op", func(t *testing.T) {
		_, err := contract.Load(strings.NewReader("- name: bad\n  steps:\n    - op: publish\n"))
		assert.ErrorContains(t, err, "unknown op")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := contract.Load(strings.NewReader("- steps:\n    - op: approve\n"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := contract.Load(strings.NewReader("name: [unterminated"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: file\n  steps:\n    - op: content\n      expect: \"\"\n"), 0644))

	scenarios, err := contract.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", scenarios[0].Name)

	_, err = contract.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
