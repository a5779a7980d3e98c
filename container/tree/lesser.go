package tree

// LessFunc determines how values of type T are ordered. It must implement
// a strict weak ordering. Two values a and b are considered equivalent when
// !less(a, b) && !less(b, a)
type LessFunc[T any] func(a, b T) bool

// Ordered represents the set of types for which the '<' operator works
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Less returns a LessFunc that uses the '<' operator
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

