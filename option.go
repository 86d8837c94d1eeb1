package comptype

// Option holds either a value or nothing.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) OrValue(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

func (o Option[T]) OrDefault() T {
	var tZero T
	return o.OrValue(tZero)
}
