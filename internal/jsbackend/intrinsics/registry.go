package intrinsics

import (
	"fmt"
	"strings"
	"sync"

	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/jsast"
	"github.com/quartzlang/quartz/internal/typesystem"
)

// Context is what generators need from the compilation unit being lowered:
// the per-unit string literal pool and a way to call fixed runtime support
// functions. The backend's lowering context implements it.
type Context interface {
	GetStringLiteral(value string) *jsast.StringLiteral
	InvokeRuntimeFunction(name string, args ...jsast.Expression) jsast.Expression
}

// Generator produces the replacement expression for a recognized call.
// receiver is nil for free calls. Generators are pure; they panic on arity
// violations because argument counts are validated before lowering.
type Generator func(receiver jsast.Expression, args []jsast.Expression, ctx Context) jsast.Expression

// ReceiverPredicate matches the static type of a call receiver.
type ReceiverPredicate func(t typesystem.Type) bool

// CallPattern identifies a call shape: an optional receiver-type predicate
// and a member (or free function) name. Patterns are lookup keys only and
// immutable once registered.
type CallPattern struct {
	// Receiver is nil for free calls (constructors, factories).
	Receiver ReceiverPredicate
	Member   string
}

type binding struct {
	pattern CallPattern
	gen     Generator
}

// Registry binds call patterns to generators. It is populated once at
// startup, frozen, and then shared read-only between compilation workers.
type Registry struct {
	bindings []binding
	frozen   bool
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a binding. It panics on a structurally invalid pattern or
// when the registry is already frozen; both are compiler defects.
func (r *Registry) Register(pattern CallPattern, gen Generator) {
	if r.frozen {
		panic("intrinsics: register after freeze")
	}
	if pattern.Member == "" {
		panic("intrinsics: pattern without member name")
	}
	if gen == nil {
		panic(fmt.Sprintf("intrinsics: nil generator for %q", pattern.Member))
	}
	r.bindings = append(r.bindings, binding{pattern: pattern, gen: gen})
}

// Freeze makes the registry immutable.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Lookup returns the generator of the earliest-registered matching pattern,
// or nil when the call is not an intrinsic. receiverType is nil for free
// calls. A nil result is the normal not-an-intrinsic signal; callers fall
// back to default lowering.
func (r *Registry) Lookup(receiverType typesystem.Type, member string) Generator {
	for _, b := range r.bindings {
		if b.pattern.Member != member {
			continue
		}
		if b.pattern.Receiver == nil {
			if receiverType == nil {
				return b.gen
			}
			continue
		}
		if receiverType != nil && b.pattern.Receiver(receiverType) {
			return b.gen
		}
	}
	return nil
}

// IsArray matches any array receiver.
func IsArray(t typesystem.Type) bool {
	_, ok := t.(typesystem.TArray)
	return ok
}

// CtorName returns the surface constructor name for k (IntArray, Array).
func (k ElementKind) CtorName() string {
	if k == GenericKind {
		return config.GenericArrayCtorName
	}
	return k.String() + "Array"
}

// FactoryName returns the vararg factory name for k (intArrayOf, arrayOf).
func (k ElementKind) FactoryName() string {
	if k == GenericKind {
		return config.GenericArrayOfName
	}
	ident := k.String()
	return strings.ToLower(ident[:1]) + ident[1:] + "ArrayOf"
}

// factoryKinds is the closed (name, kind) list, derived once at build time.
var factoryKinds = func() map[string]ElementKind {
	m := make(map[string]ElementKind, len(Kinds))
	for _, k := range Kinds {
		m[k.FactoryName()] = k
	}
	return m
}()

// FactoryKind resolves a vararg factory name to its element kind. The
// lowering phase uses it to wrap the collected argument literal before the
// factory itself is erased.
func FactoryKind(name string) (ElementKind, bool) {
	k, ok := factoryKinds[name]
	return k, ok
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry. It is built on first use,
// before which no compilation unit can have been lowered, and is frozen
// and safe for concurrent readers afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		registerArrayMembers(defaultReg)
		registerConstructors(defaultReg)
		registerFactories(defaultReg)
		defaultReg.Freeze()
	})
	return defaultReg
}

// Lookup consults the default registry.
func Lookup(receiverType typesystem.Type, member string) Generator {
	return Default().Lookup(receiverType, member)
}
