// Package models defines the entities of the fi-rise backend, the inputs
// used to create them and the patches used to update them.
package models

// FRContext is the type for values stored in the gin context.
type FRContext string

const (
	ContextURL FRContext = "fi-rise-url"
)

// Optional is a patch field that can be explicitly set to null.
//
// When Set is false, the field is left unchanged. When Set is true,
// the field is replaced with Value, which may be nil.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional that sets the field to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// apply returns the merged value for a nullable field.
func (o Optional[T]) apply(current *T) *T {
	src := current
	if o.Set {
		src = o.Value
	}

	if src == nil {
		return nil
	}

	v := *src
	return &v
}

// pick returns the patched value if it is set, the current value otherwise.
func pick[T any](current T, patched *T) T {
	if patched == nil {
		return current
	}
	return *patched
}
