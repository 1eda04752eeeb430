package units

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Named is a registered dimension: the canonical name and symbol used when
// a quantity of these Dims is printed or produced by the algebra.
type Named struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Dims   Dims   `json:"-" yaml:"-"`
}

// UnitInfo describes a registered unit for catalogue listings.
type UnitInfo struct {
	Symbol    string  `json:"symbol" yaml:"symbol"`
	Name      string  `json:"name" yaml:"name"`
	Dimension string  `json:"dimension" yaml:"dimension"`
	Scale     float64 `json:"scale" yaml:"scale"`
	Offset    float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Dims      Dims    `json:"-" yaml:"-"`
}

type registry struct {
	mu    sync.RWMutex
	named map[Dims]Named
	units map[string]UnitInfo
}

var defaultRegistry = &registry{
	named: make(map[Dims]Named),
	units: make(map[string]UnitInfo),
}

// Register names the dimension of T. A vector can only be named once; a
// second registration returns ErrDuplicateDimension.
func Register[T Tag](name, symbol string) error {
	var t T
	return defaultRegistry.register(Named{Name: name, Symbol: symbol, Dims: t.Dims()})
}

// MustRegister is like Register but panics on error. It is meant for
// package-level unit definitions.
func MustRegister[T Tag](name, symbol string) {
	if err := Register[T](name, symbol); err != nil {
		panic(err)
	}
}

func (r *registry) register(n Named) error {
	if n.Name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.named[n.Dims]; ok {
		return fmt.Errorf("%w: %s is %s", ErrDuplicateDimension, n.Dims, prev.Name)
	}
	r.named[n.Dims] = n
	return nil
}

func (r *registry) registerUnit(u UnitInfo) error {
	if u.Symbol == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.units[u.Symbol]; ok {
		return fmt.Errorf("%w: %q is %s", ErrDuplicateSymbol, u.Symbol, prev.Name)
	}
	r.units[u.Symbol] = u
	return nil
}

func (r *registry) lookup(d Dims) (Named, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.named[d]
	return n, ok
}

// Lookup returns the named dimension registered for d.
func Lookup(d Dims) (Named, bool) {
	return defaultRegistry.lookup(d)
}

// NameOf returns the registered name for d, or d's token string when the
// dimension is anonymous.
func NameOf(d Dims) string {
	if n, ok := Lookup(d); ok {
		return n.Name
	}
	return d.String()
}

// Dimensions returns every named dimension sorted by name.
func Dimensions() []Named {
	defaultRegistry.mu.RLock()
	out := make([]Named, 0, len(defaultRegistry.named))
	for _, n := range defaultRegistry.named {
		out = append(out, n)
	}
	defaultRegistry.mu.RUnlock()
	slices.SortFunc(out, func(a, b Named) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Units returns every registered unit sorted by dimension name, then scale.
func Units() []UnitInfo {
	defaultRegistry.mu.RLock()
	out := make([]UnitInfo, 0, len(defaultRegistry.units))
	for _, u := range defaultRegistry.units {
		out = append(out, u)
	}
	defaultRegistry.mu.RUnlock()
	for i := range out {
		out[i].Dimension = NameOf(out[i].Dims)
	}
	slices.SortFunc(out, func(a, b UnitInfo) int {
		if c := strings.Compare(a.Dimension, b.Dimension); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Scale, b.Scale); c != 0 {
			return c
		}
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return out
}
