package ir

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// dumpFixture builds a small graph exercising shared operands and
// multi-output references.
func dumpFixture() Node {
	a := NewGeneric(KindScalar, f32(3, 4), nil, 1, 11)
	b := NewGeneric(KindScalar, f32(3, 4), nil, 1, 12)
	sum := NewGeneric(KindAdd, f32(3, 4), []Operand{{a, 0}, {b, 0}}, 1, DefaultHashSeed)
	act := NewGeneric(KindReLU, f32(3, 4), []Operand{{sum, 0}}, 1, DefaultHashSeed)
	parts := NewGeneric(KindChunk, f32(3, 2), []Operand{{act, 0}}, 2, DefaultHashSeed)
	return NewGeneric(KindConcat, f32(3, 4), []Operand{{parts, 0}, {parts, 1}}, 1, DefaultHashSeed)
}

func TestDumpText(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "dump_text", []byte(DumpText(dumpFixture())))
}

func TestDumpDot(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "dump_dot", []byte(DumpDot(dumpFixture())))
}

func TestDumpTextMultipleRoots(t *testing.T) {
	a := leaf(1, f32(2))
	b := NewGeneric(KindNeg, f32(2), []Operand{{a, 0}}, 1, DefaultHashSeed)
	c := NewGeneric(KindExp, f32(2), []Operand{{a, 0}}, 1, DefaultHashSeed)

	out := DumpText(b, c)
	if !strings.HasSuffix(out, "roots: %1 %2\n") {
		t.Errorf("unexpected roots line in:\n%s", out)
	}
}

func TestDumpDotEscapesLabels(t *testing.T) {
	kind := OpKind{Namespace: "custom", Name: `say_"hi"`}
	n := NewGeneric(kind, f32(1), nil, 1, 1)

	out := DumpDot(n)
	if strings.Contains(out, `"hi"]`) {
		t.Errorf("unescaped quote in label:\n%s", out)
	}
	if !strings.Contains(out, `\"hi\"`) {
		t.Errorf("expected escaped quotes in:\n%s", out)
	}
}
