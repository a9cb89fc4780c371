// Package config provides the option values and default-overlay merge used by
// every worksheet configuration record.
package config

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type state uint8

const (
	unset state = iota
	null
	set
)

// Optional is a configuration value that is either unset, explicitly null,
// or set to a value. Unset options take their default on merge; null and set
// options override it.
type Optional[T any] struct {
	value T
	state state
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: set}
}

// Null returns an Optional that explicitly holds no value.
func Null[T any]() Optional[T] {
	return Optional[T]{state: null}
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == set
}

// Value returns the held value, or the zero value of T.
func (o Optional[T]) Value() T {
	return o.value
}

// ValueOr returns the held value, or fallback when none is present.
func (o Optional[T]) ValueOr(fallback T) T {
	if o.state == set {
		return o.value
	}
	return fallback
}

// IsSet reports whether the option holds a value.
func (o Optional[T]) IsSet() bool { return o.state == set }

// IsNull reports whether the option was explicitly given as null.
func (o Optional[T]) IsNull() bool { return o.state == null }

// IsDefined reports whether the option was given at all, as a value or null.
func (o Optional[T]) IsDefined() bool { return o.state != unset }

// IsZero reports whether the option was never given. It lets encoding/json
// drop unset options under the omitzero tag.
func (o Optional[T]) IsZero() bool { return o.state == unset }

// Or returns o when it is defined, else fallback.
func (o Optional[T]) Or(fallback Optional[T]) Optional[T] {
	if o.IsDefined() {
		return o
	}
	return fallback
}

// Ptr returns a pointer to a copy of the value, or nil when none is present.
func (o Optional[T]) Ptr() *T {
	if o.state != set {
		return nil
	}
	v := o.value
	return &v
}

// FromPtr returns Some(*p), or an unset Optional when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if o.state != set {
		return nil, nil
	}
	return o.value, nil
}
