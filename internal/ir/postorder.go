package ir

import "github.com/pkg/errors"

const (
	visitPending = iota + 1
	visitEmitted
)

// PostOrder returns every node reachable from the roots exactly once,
// operands before consumers. Traversal is iterative and deterministic:
// roots in argument order, operands left to right.
func PostOrder(roots ...Node) []Node {
	state := make(map[Node]int)
	order := make([]Node, 0)
	var stack []Node

	for _, root := range roots {
		if root == nil {
			panic(errors.Errorf("ir: nil root"))
		}
		stack = append(stack, root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			switch state[n] {
			case 0:
				state[n] = visitPending
				operands := n.Operands()
				for i := len(operands) - 1; i >= 0; i-- {
					producer := operands[i].Node
					switch state[producer] {
					case 0:
						stack = append(stack, producer)
					case visitPending:
						panic(errors.Errorf("ir: graph cycle at %s", producer))
					}
				}
			case visitPending:
				stack = stack[:len(stack)-1]
				state[n] = visitEmitted
				order = append(order, n)
			case visitEmitted:
				stack = stack[:len(stack)-1]
			}
		}
	}
	return order
}
