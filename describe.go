package selfobject

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// A Snapshot is a non-semantic description of an object's shape, listing
// slot and parent names rather than values. The evaluator and the resolver
// never consult snapshots; they exist for debugging.
type Snapshot struct {
	Slots    []string    `yaml:"slots,omitempty"`
	Parents  []string    `yaml:"parents,omitempty"`
	Messages []string    `yaml:"messages,omitempty"`
	Value    interface{} `yaml:"value,omitempty"`
	Native   bool        `yaml:"native,omitempty"`
}

// Snapshot captures the object's shape. Slot names are sorted; parent names
// keep their mark order.
func (o *Object) Snapshot() Snapshot {
	return Snapshot{
		Slots:    o.SlotNames(),
		Parents:  o.ParentNames(),
		Messages: append([]string(nil), o.Messages...),
		Value:    o.Value,
		Native:   o.Native != nil,
	}
}

// Describe returns a one-line human-readable snapshot of the object's
// shape.
func (o *Object) Describe() string {
	s := o.Snapshot()
	b := strings.Builder{}
	fmt.Fprintf(&b, "Object_%p slots(%s)", o, strings.Join(s.Slots, ", "))
	if len(s.Parents) > 0 {
		fmt.Fprintf(&b, " parents(%s)", strings.Join(s.Parents, ", "))
	}
	if s.Value != nil {
		fmt.Fprintf(&b, " value(%v)", s.Value)
	}
	if len(s.Messages) > 0 {
		fmt.Fprintf(&b, " messages(%s)", strings.Join(s.Messages, " "))
	}
	if s.Native {
		b.WriteString(" native")
	}
	return b.String()
}

// DescribeYAML renders the object's snapshot as YAML.
func (o *Object) DescribeYAML() (string, error) {
	out, err := yaml.Marshal(o.Snapshot())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
