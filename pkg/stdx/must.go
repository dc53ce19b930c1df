// Package stdx carries small generic helpers the standard library doesn't
// provide.
package stdx

// Must0 panics if the provided error is not nil. Use it only for programmer
// errors at construction time, never on a request path.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking if err is not nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must2 returns both values, panicking if err is not nil.
func Must2[T any, V any](t T, v V, err error) (T, V) {
	if err != nil {
		panic(err)
	}
	return t, v
}
