// Package pipeline applies a YAML-described batch of DOM transforms to a
// document. Each op selects elements and performs one action on them.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chrisuehlinger/domkit/dom"
)

// Op is a single transform: every element matching Selector gets Action
// applied. Name and Value carry the action's arguments (attribute name,
// class list, text).
type Op struct {
	Selector string `yaml:"selector"`
	Action   string `yaml:"action"`
	Name     string `yaml:"name,omitempty"`
	Value    string `yaml:"value,omitempty"`
}

// Pipeline is an ordered list of ops.
type Pipeline struct {
	Ops []Op `yaml:"ops"`
}

// Load parses a pipeline from YAML.
func Load(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pipeline: %w", err)
	}
	return &p, nil
}

// LoadFile parses a pipeline from a YAML file.
func LoadFile(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline: %w", err)
	}
	return Load(data)
}

// Apply runs every op against the document in order and returns the
// number of elements touched. An op with an unknown action or an empty
// selector stops the run with an error; ops before it stay applied.
func (p *Pipeline) Apply(doc *dom.Document) (int, error) {
	touched := 0
	for i, op := range p.Ops {
		if op.Selector == "" {
			return touched, fmt.Errorf("op %d: %w", i, dom.ErrSyntax("missing selector"))
		}
		matches := doc.QuerySelectorAll(op.Selector)
		for _, el := range matches {
			if err := applyOp(op, el); err != nil {
				return touched, fmt.Errorf("op %d: %w", i, err)
			}
			touched++
		}
	}
	return touched, nil
}

func applyOp(op Op, el *dom.Element) error {
	switch op.Action {
	case "add-class":
		dom.AddClasses(el, op.Value)
	case "remove-class":
		dom.RemoveClasses(el, op.Value)
	case "toggle-class":
		dom.ToggleClasses(el, op.Value)
	case "set-attr":
		if op.Name == "" {
			return dom.ErrSyntax("set-attr needs a name")
		}
		el.SetAttribute(op.Name, op.Value)
	case "remove-attr":
		if op.Name == "" {
			return dom.ErrSyntax("remove-attr needs a name")
		}
		el.RemoveAttribute(op.Name)
	case "set-text":
		el.SetTextContent(op.Value)
	case "remove":
		dom.ExitDocument(el)
	default:
		return dom.ErrNotSupported(fmt.Sprintf("unknown action %q", op.Action))
	}
	return nil
}
