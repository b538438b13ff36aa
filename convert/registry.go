package convert

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"dataprovider/source"
)

var (
	ErrNoEnumMembers     = errors.New("enum registration needs at least one member")
	ErrDuplicateEnumName = errors.New("enum members must have distinct names")
)

// DefaultRegistry is used by coercers built without an explicit registry.
var DefaultRegistry = NewRegistry()

// Registry maps target types to custom converters and enum member tables.
// It is safe for concurrent use; a nil *Registry is an empty registry.
type Registry struct {
	mu      sync.RWMutex
	casters map[reflect.Type][]Caster
	enums   map[reflect.Type][]enumMember
}

type enumMember struct {
	name  string
	value reflect.Value
}

func NewRegistry() *Registry {
	return &Registry{
		casters: make(map[reflect.Type][]Caster),
		enums:   make(map[reflect.Type][]enumMember),
	}
}

// Register adds a caster function (see ParseCaster) for its result type.
// Later registrations for the same source and result types take precedence.
func (r *Registry) Register(fn any) error {
	caster, err := ParseCaster(fn)
	if err != nil {
		return fmt.Errorf("register %T: %w", fn, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.casters[caster.Dst] = append([]Caster{caster}, r.casters[caster.Dst]...)

	return nil
}

// MustRegister is like Register but panics on an invalid caster.
func (r *Registry) MustRegister(fns ...any) {
	for _, fn := range fns {
		if err := r.Register(fn); err != nil {
			panic(err)
		}
	}
}

// Lookup finds a caster producing dst that accepts a value of type src.
// Casters taking exactly src win over ones src is merely assignable to.
func (r *Registry) Lookup(src, dst reflect.Type) (Caster, bool) {
	if r == nil || src == nil || dst == nil {
		return Caster{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := r.casters[dst]
	for _, c := range candidates {
		if c.Src == src {
			return c, true
		}
	}

	for _, c := range candidates {
		if c.Accepts(src) {
			return c, true
		}
	}

	return Caster{}, false
}

// Has reports whether any caster produces dst.
func (r *Registry) Has(dst reflect.Type) bool {
	if r == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.casters[dst]) > 0
}

// RegisterEnum records the members of an enum type. Member names come from
// String, so a stringer-generated type registers with its constants alone.
func RegisterEnum[T fmt.Stringer](r *Registry, members ...T) error {
	if len(members) == 0 {
		return ErrNoEnumMembers
	}

	rtype := reflect.TypeFor[T]()
	table := make([]enumMember, 0, len(members))

	for _, m := range members {
		name := m.String()
		if slices.ContainsFunc(table, func(e enumMember) bool { return e.name == name }) {
			return fmt.Errorf("%w: %s has %q twice", ErrDuplicateEnumName, rtype, name)
		}

		table = append(table, enumMember{name: name, value: reflect.ValueOf(m)})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.enums[rtype] = table

	return nil
}

// MustRegisterEnum is like RegisterEnum but panics on an invalid member list.
func MustRegisterEnum[T fmt.Stringer](r *Registry, members ...T) {
	if err := RegisterEnum(r, members...); err != nil {
		panic(err)
	}
}

// EnumNames lists the registered member names of rtype in registration order.
func (r *Registry) EnumNames(rtype reflect.Type) []string {
	members := r.enum(rtype)
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.name)
	}

	return names
}

// EnumMembers returns the registered members of T in registration order, nil
// when T is not a registered enum.
func EnumMembers[T any](r *Registry) []T {
	members := r.enum(reflect.TypeFor[T]())
	if len(members) == 0 {
		return nil
	}

	out := make([]T, len(members))
	for i, m := range members {
		out[i] = m.value.Interface().(T)
	}

	return out
}

// ForEachEnum makes a data source with one row per registered member of T. An
// unregistered T gives a nil source, which expansion rejects as malformed.
func ForEachEnum[T any](r *Registry) [][]any {
	members := EnumMembers[T](r)
	if members == nil {
		return nil
	}

	return source.ForEach(members...)
}

func (r *Registry) enum(rtype reflect.Type) []enumMember {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.enums[rtype]
}

// lookupEnum matches name against the registered members of rtype.
func (r *Registry) lookupEnum(rtype reflect.Type, name string, ignoreCase bool) (reflect.Value, bool) {
	members := r.enum(rtype)
	if i := slices.IndexFunc(members, func(m enumMember) bool { return m.name == name }); i >= 0 {
		return members[i].value, true
	}

	if !ignoreCase {
		return reflect.Value{}, false
	}

	if i := slices.IndexFunc(members, func(m enumMember) bool { return strings.EqualFold(m.name, name) }); i >= 0 {
		return members[i].value, true
	}

	return reflect.Value{}, false
}
