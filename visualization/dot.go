package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/docflow"
)

// DOTGenerator generates Graphviz DOT format representations of the document workflow
type DOTGenerator struct {
	transitions []docflow.Transition
	options     DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowEventLabels bool
	HighlightPhase  *docflow.Phase
	RankDirection   string // "TB", "LR", "BT", "RL"
	NodeShape       string
	TransitionStyle string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowEventLabels: true,
		RankDirection:   "LR",
		NodeShape:       "box",
		TransitionStyle: "solid",
	}
}

// NewDOTGenerator creates a new DOT generator for the docflow workflow
func NewDOTGenerator(options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		transitions: docflow.Transitions(),
		options:     opts,
	}
}

// ForDocument returns a generator that highlights the document's current phase
func ForDocument(doc *docflow.Document, options ...DOTOptions) *DOTGenerator {
	g := NewDOTGenerator(options...)
	phase := doc.Phase()
	g.options.HighlightPhase = &phase
	return g
}

// Generate creates a DOT representation of the workflow
func (g *DOTGenerator) Generate() (string, error) {
	var dot strings.Builder

	dot.WriteString("digraph DocumentWorkflow {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	if err := g.generatePhases(&dot); err != nil {
		return "", fmt.Errorf("failed to generate phases: %w", err)
	}

	if err := g.generateTransitions(&dot); err != nil {
		return "", fmt.Errorf("failed to generate transitions: %w", err)
	}

	dot.WriteString("}\n")

	return dot.String(), nil
}

func (g *DOTGenerator) generatePhases(dot *strings.Builder) error {
	final := make(map[docflow.Phase]bool)
	for _, phase := range docflow.FinalPhases() {
		final[phase] = true
	}

	dot.WriteString("  // Phases\n")

	for _, phase := range docflow.Phases() {
		shape := g.options.NodeShape
		fillColor := "lightblue"
		label := phase.String()

		if phase == docflow.InitialPhase() {
			fillColor = "lightgreen"
			label += "\\n(initial)"
		}
		if final[phase] {
			shape = "doublecircle"
			fillColor = "lightcoral"
		}
		if g.options.HighlightPhase != nil && *g.options.HighlightPhase == phase {
			fillColor = "gold"
			label += "\\n(current)"
		}

		dot.WriteString(fmt.Sprintf("  \"%s\" [shape=%s style=\"filled\" fillcolor=%s label=\"%s\"];\n",
			phase, shape, fillColor, label))
	}
	dot.WriteString("\n")

	return nil
}

func (g *DOTGenerator) generateTransitions(dot *strings.Builder) error {
	dot.WriteString("  // Transitions\n")

	for _, t := range g.transitions {
		if t.From == t.To {
			return fmt.Errorf("self transition on %s", t.From)
		}

		attrs := fmt.Sprintf("style=%s", g.options.TransitionStyle)
		if g.options.ShowEventLabels {
			attrs += fmt.Sprintf(" label=\"%s\"", t.EventName)
		}
		dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [%s];\n", t.From, t.To, attrs))
	}

	return nil
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// GenerateSVG renders the DOT output to SVG with the Graphviz dot command
func (g *DOTGenerator) GenerateSVG() (string, error) {
	dotContent, err := g.Generate()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
