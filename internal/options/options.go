package options

// Option represents a functional option for configuring any type T.
// Implementations are produced by New and NoError; the unexported apply
// method keeps option construction inside the owning package.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option for type T.
type Func[T any] func(T) error

// apply implements the Option interface.
func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates a functional option from a function that may fail.
// Validation errors surface when the option is applied.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates a functional option from a function that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies options to a target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
