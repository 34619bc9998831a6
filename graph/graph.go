// Package graph renders the declared state graph of a cfsm.Set in DOT and
// Mermaid formats for documentation and review.
package graph

import (
	"fmt"
	"strings"

	"github.com/cfsm-go/cfsm"
)

// DOT renders the state graph as a Graphviz digraph. States appear in TypeID
// order; dashed edges mark transitions declared without an action.
func DOT(info *cfsm.SetInfo) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("rankdir=\"LR\"\n")
	sb.WriteString("node [shape=Mrecord]\n")

	for _, s := range info.States {
		name := EscapeLabel(s.Name)
		fmt.Fprintf(&sb, "\"%s\" [label=\"%s\"];\n", name, name)
	}
	for _, e := range info.Edges {
		attrs := ""
		if !e.HasAction {
			attrs = " [style=dashed]"
		}
		fmt.Fprintf(&sb, "\"%s\" -> \"%s\"%s;\n",
			EscapeLabel(e.From.Name), EscapeLabel(e.To.Name), attrs)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Direction specifies the flow of a Mermaid diagram.
type Direction int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom Direction = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// Mermaid renders the state graph as a Mermaid stateDiagram-v2.
func Mermaid(info *cfsm.SetInfo, direction Direction) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	fmt.Fprintf(&sb, "\tdirection %s\n", direction)

	for _, s := range info.States {
		fmt.Fprintf(&sb, "\t%s\n", mermaidID(s.Name))
	}
	for _, e := range info.Edges {
		fmt.Fprintf(&sb, "\t%s --> %s\n", mermaidID(e.From.Name), mermaidID(e.To.Name))
	}
	return sb.String()
}

// EscapeLabel escapes characters with special meaning in DOT labels.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	return strings.ReplaceAll(label, "\"", "\\\"")
}

// mermaidID rewrites a state name into an identifier Mermaid accepts.
func mermaidID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
