package ir

import (
	"fmt"
	"strings"
)

// DumpText renders the graph under the roots as one node per line in
// post-order:
//
//	%0 = float32[3,4] laze::device_data, device=cpu:0
//	%2 = float32[3,4] tensor::add (%0, %1)
//
// Operand references to output indexes above zero render as "%1.2".
// A trailing line lists the roots.
func DumpText(roots ...Node) string {
	order := PostOrder(roots...)
	ids := make(map[Node]int, len(order))

	var sb strings.Builder
	for i, n := range order {
		ids[n] = i
		fmt.Fprintf(&sb, "%%%d = %s", i, n)
		if operands := n.Operands(); len(operands) > 0 {
			sb.WriteString(" (")
			for j, op := range operands {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(operandRef(ids, op))
			}
			sb.WriteString(")")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("roots:")
	for _, root := range roots {
		fmt.Fprintf(&sb, " %%%d", ids[root])
	}
	sb.WriteByte('\n')
	return sb.String()
}

func operandRef(ids map[Node]int, op Operand) string {
	if op.Index > 0 {
		return fmt.Sprintf("%%%d.%d", ids[op.Node], op.Index)
	}
	return fmt.Sprintf("%%%d", ids[op.Node])
}

// DumpDot renders the graph under the roots as a Graphviz digraph.
// Node ids follow the same post-order as DumpText; edges point from
// operand to consumer and carry the output index as a label when it is
// above zero.
func DumpDot(roots ...Node) string {
	order := PostOrder(roots...)
	ids := make(map[Node]int, len(order))
	for i, n := range order {
		ids[n] = i
	}

	rootSet := make(map[Node]bool, len(roots))
	for _, root := range roots {
		rootSet[root] = true
	}

	var sb strings.Builder
	sb.WriteString("digraph laze {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, fontname=\"Helvetica\"];\n\n")

	for i, n := range order {
		attrs := ""
		if rootSet[n] {
			attrs = ", peripheries=2"
		}
		fmt.Fprintf(&sb, "  n%d [label=\"%s\"%s];\n", i, dotEscape(n.String()), attrs)
	}

	sb.WriteString("\n")

	for i, n := range order {
		for _, op := range n.Operands() {
			if op.Index > 0 {
				fmt.Fprintf(&sb, "  n%d -> n%d [label=\"%d\"];\n", ids[op.Node], i, op.Index)
			} else {
				fmt.Fprintf(&sb, "  n%d -> n%d;\n", ids[op.Node], i)
			}
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
