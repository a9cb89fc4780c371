package sheetdoc

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// Registry maps cell addresses (e.g. "B7") to at most one value each.
// Addresses are opaque keys: they are neither validated nor normalized.
// Removing an address leaves an explicit absent marker in its slot, which
// reads exactly like an address that was never added. The zero value is an
// empty registry ready to use.
type Registry[T any] struct {
	model map[string]config.Optional[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{model: make(map[string]config.Optional[T])}
}

// Add stores v at address, replacing any previous value, and returns v.
func (r *Registry[T]) Add(address string, v T) T {
	r.init()
	r.model[address] = config.Some(v)
	return v
}

// Find returns the value at address.
func (r *Registry[T]) Find(address string) (T, bool) {
	return r.model[address].Get()
}

// Remove clears address.
func (r *Registry[T]) Remove(address string) {
	r.init()
	r.model[address] = config.Null[T]()
}

func (r *Registry[T]) init() {
	if r.model == nil {
		r.model = make(map[string]config.Optional[T])
	}
}

// Len counts the addresses holding a value.
func (r *Registry[T]) Len() int {
	n := 0
	for _, v := range r.model {
		if v.IsSet() {
			n++
		}
	}
	return n
}

// Addresses returns the addresses holding a value, in row then column
// order. Addresses that are not cell references sort last, lexically.
func (r *Registry[T]) Addresses() []string {
	out := make([]string, 0, len(r.model))
	for addr, v := range r.model {
		if v.IsSet() {
			out = append(out, addr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return addressLess(out[i], out[j])
	})
	return out
}

// Each calls fn for every address holding a value, in Addresses order.
func (r *Registry[T]) Each(fn func(address string, v T)) {
	for _, addr := range r.Addresses() {
		v, _ := r.model[addr].Get()
		fn(addr, v)
	}
}

func addressLess(a, b string) bool {
	ac, ar, aerr := excelize.CellNameToCoordinates(a)
	bc, br, berr := excelize.CellNameToCoordinates(b)
	switch {
	case aerr != nil && berr != nil:
		return a < b
	case aerr != nil:
		return false
	case berr != nil:
		return true
	case ar != br:
		return ar < br
	case ac != bc:
		return ac < bc
	}
	return a < b
}

// DataValidations holds the validation rules of a worksheet by address.
type DataValidations = Registry[models.DataValidation]

// Notes holds the notes of a worksheet by address.
type Notes = Registry[*Note]
