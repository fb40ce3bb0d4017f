package ir

import "testing"

func TestPostOrderDiamond(t *testing.T) {
	a := leaf(1, f32(4))
	b := NewGeneric(KindNeg, f32(4), []Operand{{a, 0}}, 1, DefaultHashSeed)
	c := NewGeneric(KindExp, f32(4), []Operand{{a, 0}}, 1, DefaultHashSeed)
	d := NewGeneric(KindAdd, f32(4), []Operand{{b, 0}, {c, 0}}, 1, DefaultHashSeed)

	order := PostOrder(d)

	want := []Node{a, b, c, d}
	if len(order) != len(want) {
		t.Fatalf("len(order) = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestPostOrderSharedOperand(t *testing.T) {
	a := leaf(1, f32(2))
	twice := NewGeneric(KindAdd, f32(2), []Operand{{a, 0}, {a, 0}}, 1, DefaultHashSeed)

	order := PostOrder(twice)
	if len(order) != 2 {
		t.Fatalf("shared operand emitted more than once: %d nodes", len(order))
	}
	if order[0] != a || order[1] != twice {
		t.Error("order is not operands-first")
	}
}

func TestPostOrderMultipleRoots(t *testing.T) {
	a := leaf(1, f32(4))
	b := NewGeneric(KindNeg, f32(4), []Operand{{a, 0}}, 1, DefaultHashSeed)
	c := NewGeneric(KindExp, f32(4), []Operand{{a, 0}}, 1, DefaultHashSeed)
	d := NewGeneric(KindAdd, f32(4), []Operand{{b, 0}, {c, 0}}, 1, DefaultHashSeed)

	order := PostOrder(b, d)

	want := []Node{a, b, c, d}
	if len(order) != len(want) {
		t.Fatalf("len(order) = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestPostOrderEmpty(t *testing.T) {
	if order := PostOrder(); len(order) != 0 {
		t.Errorf("PostOrder() = %v, want empty", order)
	}
}

func TestPostOrderNilRoot(t *testing.T) {
	assertPanics(t, "nil root", func() { PostOrder(nil) })
}
