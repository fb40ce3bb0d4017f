package ir

import (
	"sort"

	"github.com/pkg/errors"
)

// Hash seed constants. Seeds disambiguate zero-operand leaves beyond
// what the kind string already provides and feed every node's digest.
const (
	// DefaultHashSeed is used by kinds without a dedicated constant.
	DefaultHashSeed uint32 = 0x9e3779b9

	// DeviceDataHashSeed marks device-resident data leaves.
	DeviceDataHashSeed uint32 = 101
)

// OpInfo describes the construction constraints of a registered kind.
type OpInfo struct {
	Seed       uint32 // hash seed mixed into every node of this kind
	Arity      int    // expected operand count; negative means variadic
	NumOutputs int    // fixed output count; 0 means caller-chosen
}

// Registry maps operator kinds to their construction constraints. The
// trace layer consults it to validate requests and to fetch hash seeds,
// so seeds never appear at construction sites.
type Registry struct {
	infos map[OpKind]OpInfo
}

// NewRegistry creates a registry with all builtin kinds registered.
func NewRegistry() *Registry {
	r := &Registry{
		infos: make(map[OpKind]OpInfo),
	}

	// Register all builtin kinds
	r.registerLeaves()
	r.registerUnaryOps()
	r.registerBinaryOps()
	r.registerVariadicOps()

	return r
}

func (r *Registry) registerLeaves() {
	r.Register(KindDeviceData, OpInfo{Seed: DeviceDataHashSeed, Arity: 0, NumOutputs: 1})
	r.Register(KindScalar, OpInfo{Seed: DefaultHashSeed, Arity: 0, NumOutputs: 1})
}

func (r *Registry) registerUnaryOps() {
	for _, kind := range []OpKind{KindNeg, KindReLU, KindTanh, KindExp, KindReshape, KindTranspose, KindSum, KindCast} {
		r.Register(kind, OpInfo{Seed: DefaultHashSeed, Arity: 1, NumOutputs: 1})
	}
}

func (r *Registry) registerBinaryOps() {
	for _, kind := range []OpKind{KindAdd, KindSub, KindMul, KindDiv, KindMatMul} {
		r.Register(kind, OpInfo{Seed: DefaultHashSeed, Arity: 2, NumOutputs: 1})
	}
}

func (r *Registry) registerVariadicOps() {
	r.Register(KindConcat, OpInfo{Seed: DefaultHashSeed, Arity: -1, NumOutputs: 1})
	r.Register(KindChunk, OpInfo{Seed: DefaultHashSeed, Arity: 1, NumOutputs: 0})
}

// Register adds or replaces a kind. Later registrations win, so callers
// can override builtins.
func (r *Registry) Register(kind OpKind, info OpInfo) {
	if kind.Namespace == "" || kind.Name == "" {
		panic(errors.Errorf("ir: register empty operator kind"))
	}
	r.infos[kind] = info
}

// Info returns the registration for a kind.
func (r *Registry) Info(kind OpKind) (OpInfo, bool) {
	info, ok := r.infos[kind]
	return info, ok
}

// Validate checks a construction request against the registration for
// its kind and returns the kind's OpInfo. Unknown kinds, arity
// mismatches, and output count mismatches are programming errors and
// panic.
func (r *Registry) Validate(kind OpKind, numOperands, numOutputs int) OpInfo {
	info, ok := r.infos[kind]
	if !ok {
		panic(errors.Errorf("ir: unknown operator kind %s", kind))
	}
	if info.Arity >= 0 && numOperands != info.Arity {
		panic(errors.Errorf("ir: %s expects %d operands, got %d", kind, info.Arity, numOperands))
	}
	if numOutputs < 1 {
		panic(errors.Errorf("ir: %s with %d outputs (must be >= 1)", kind, numOutputs))
	}
	if info.NumOutputs > 0 && numOutputs != info.NumOutputs {
		panic(errors.Errorf("ir: %s produces %d outputs, got %d", kind, info.NumOutputs, numOutputs))
	}
	return info
}

// Kinds returns all registered kinds sorted by their string form.
func (r *Registry) Kinds() []OpKind {
	kinds := make([]OpKind, 0, len(r.infos))
	for kind := range r.infos {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].String() < kinds[j].String()
	})
	return kinds
}
