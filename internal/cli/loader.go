package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/backend/host"
	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/ir/ops"
	"github.com/laze-ml/laze/internal/shape"
	"github.com/laze-ml/laze/internal/trace"
)

// Program is a YAML-described trace: an ordered list of construction
// steps that can be replayed against a context any number of times.
type Program struct {
	Steps []Step   `yaml:"steps"`
	Roots []string `yaml:"roots"`
}

// Step describes one node construction. Leaf steps (device_data,
// scalar) carry dtype/dims plus device or value; interior steps name
// their inputs and may override the result shape.
type Step struct {
	ID      string   `yaml:"id"`
	Op      string   `yaml:"op"`
	DType   string   `yaml:"dtype"`
	Dims    []int    `yaml:"dims"`
	Device  string   `yaml:"device"`
	Value   *float64 `yaml:"value"`
	Inputs  []string `yaml:"inputs"`
	Outputs int      `yaml:"outputs"`
}

// LoadProgram reads and parses a YAML program from a file.
func LoadProgram(path string) (*Program, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read program")
	}
	prog, err := ParseProgram(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "program %s", path)
	}
	return prog, nil
}

// ParseProgram parses YAML bytes into a validated Program.
func ParseProgram(raw []byte) (*Program, error) {
	var prog Program
	if err := yaml.Unmarshal(raw, &prog); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if err := prog.validate(); err != nil {
		return nil, err
	}
	return &prog, nil
}

func (p *Program) validate() error {
	if len(p.Steps) == 0 {
		return errors.New("program has no steps")
	}

	seen := make(map[string]bool, len(p.Steps))
	for i, step := range p.Steps {
		if step.ID == "" {
			return errors.Errorf("step %d: missing id", i)
		}
		if seen[step.ID] {
			return errors.Errorf("step %q: duplicate id", step.ID)
		}
		if step.Op == "" {
			return errors.Errorf("step %q: missing op", step.ID)
		}
		for _, d := range step.Dims {
			if d <= 0 {
				return errors.Errorf("step %q: dimension %d must be positive", step.ID, d)
			}
		}
		if step.Outputs < 0 {
			return errors.Errorf("step %q: outputs must not be negative", step.ID)
		}
		for _, ref := range step.Inputs {
			name, _, err := parseRef(ref)
			if err != nil {
				return errors.Wrapf(err, "step %q", step.ID)
			}
			if !seen[name] {
				return errors.Errorf("step %q: input %q is not defined by an earlier step", step.ID, name)
			}
		}
		seen[step.ID] = true
	}

	for _, root := range p.Roots {
		if !seen[root] {
			return errors.Errorf("root %q is not a step id", root)
		}
	}
	return nil
}

// Build replays the program once against the context and returns the
// root nodes. Construction panics from invalid steps are converted to
// errors so a malformed program cannot crash the CLI.
func (p *Program) Build(tc *trace.Context) (roots []ir.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			roots = nil
			err = errors.Errorf("build program: %v", r)
		}
	}()

	env := make(map[string]ir.Node, len(p.Steps))
	for _, step := range p.Steps {
		node, berr := buildStep(tc, env, step)
		if berr != nil {
			return nil, errors.Wrapf(berr, "step %q", step.ID)
		}
		env[step.ID] = node
	}

	if len(p.Roots) == 0 {
		return []ir.Node{env[p.Steps[len(p.Steps)-1].ID]}, nil
	}
	roots = make([]ir.Node, 0, len(p.Roots))
	for _, root := range p.Roots {
		roots = append(roots, env[root])
	}
	return roots, nil
}

func buildStep(tc *trace.Context, env map[string]ir.Node, step Step) (ir.Node, error) {
	kind, err := resolveKind(tc, step.Op)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ir.KindDeviceData:
		sh, err := stepShape(step)
		if err != nil {
			return nil, err
		}
		devSpec := step.Device
		if devSpec == "" {
			devSpec = "cpu:0"
		}
		dev, err := backend.ParseDevice(devSpec)
		if err != nil {
			return nil, err
		}
		return ops.NewDeviceData(tc, host.Alloc(dev, sh)), nil

	case ir.KindScalar:
		if step.Value == nil {
			return nil, errors.New("scalar step requires a value")
		}
		sh, err := stepShape(step)
		if err != nil {
			return nil, err
		}
		return ops.NewScalar(tc, sh, *step.Value), nil
	}

	operands := make([]ir.Operand, 0, len(step.Inputs))
	for _, ref := range step.Inputs {
		name, index, err := parseRef(ref)
		if err != nil {
			return nil, err
		}
		operands = append(operands, ir.Operand{Node: env[name], Index: index})
	}

	sh, err := resultShape(step, operands)
	if err != nil {
		return nil, err
	}

	numOutputs := step.Outputs
	if numOutputs == 0 {
		if info, ok := tc.Registry().Info(kind); ok && info.NumOutputs > 0 {
			numOutputs = info.NumOutputs
		} else {
			numOutputs = 1
		}
	}
	return tc.Construct(kind, sh, operands, numOutputs), nil
}

// resolveKind maps a step's op field to a registered kind. Ops may be
// written in full "namespace::name" form; bare names are tried in the
// laze and tensor namespaces.
func resolveKind(tc *trace.Context, op string) (ir.OpKind, error) {
	if strings.Contains(op, "::") {
		kind, err := ir.ParseKind(op)
		if err != nil {
			return ir.OpKind{}, err
		}
		return kind, nil
	}
	for _, ns := range []string{"laze", "tensor"} {
		kind := ir.OpKind{Namespace: ns, Name: op}
		if _, ok := tc.Registry().Info(kind); ok {
			return kind, nil
		}
	}
	return ir.OpKind{}, errors.Errorf("unknown op %q", op)
}

// stepShape builds the shape of a leaf step from its dtype and dims.
func stepShape(step Step) (shape.Shape, error) {
	if step.DType == "" {
		return shape.Shape{}, errors.New("missing dtype")
	}
	dtype, err := shape.ParseDataType(step.DType)
	if err != nil {
		return shape.Shape{}, err
	}
	return shape.New(dtype, step.Dims...), nil
}

// resultShape determines an interior step's shape. With both dtype and
// dims the shape is explicit; with dims alone the dtype is inherited
// from the first input; with neither the whole shape is inherited.
func resultShape(step Step, operands []ir.Operand) (shape.Shape, error) {
	if step.DType != "" {
		return stepShape(step)
	}
	if len(operands) == 0 {
		return shape.Shape{}, errors.New("missing dtype")
	}
	first := operands[0].Node.Shape()
	if step.Dims == nil {
		return first, nil
	}
	return shape.New(first.DType(), step.Dims...), nil
}

// parseRef splits an input reference "name" or "name:index" into the
// step id and output index.
func parseRef(ref string) (string, int, error) {
	name, suffix, found := strings.Cut(ref, ":")
	if name == "" {
		return "", 0, errors.Errorf("invalid input reference %q", ref)
	}
	if !found {
		return name, 0, nil
	}
	index, err := strconv.Atoi(suffix)
	if err != nil || index < 0 {
		return "", 0, errors.Errorf("invalid output index in reference %q", ref)
	}
	return name, index, nil
}
