package config

// Mergeable is a configuration record that knows how to overlay a partial
// record of the same type onto itself. Nested records merge independently.
type Mergeable[T any] interface {
	Merge(override T) T
}

// Merge overlays overrides onto defaults. A nil overrides yields defaults.
func Merge[T Mergeable[T]](defaults T, overrides *T) T {
	if overrides == nil {
		return defaults
	}
	return defaults.Merge(*overrides)
}

// MergeSlice returns a copy of override when it is non-nil, else a copy of
// defaults. Lists are options like any other: they replace, they do not
// concatenate. The copy is shallow.
func MergeSlice[T any](defaults, override []T) []T {
	src := defaults
	if override != nil {
		src = override
	}
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}
