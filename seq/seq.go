// Package seq implements lazy combinators over [iter.Seq].
package seq

import "iter"

// Groups returns every window of n consecutive elements of s, one window
// per element of s. Windows that run past the end of s are padded with
// fill. Each yielded slice is newly allocated.
//
// Groups panics if n is less than 1.
func Groups[T any](s iter.Seq[T], n int, fill T) iter.Seq[[]T] {
	if n < 1 {
		panic("seq: group size must be positive")
	}

	return func(yield func([]T) bool) {
		next, stop := iter.Pull(s)
		defer stop()

		window := make([]T, 0, n)

		// Elements taken from s always sit at the front of the window,
		// followed by padding.
		held := 0
		exhausted := false

		pull := func() {
			if !exhausted {
				if v, ok := next(); ok {
					window = append(window, v)
					held++
					return
				}
				exhausted = true
			}
			window = append(window, fill)
		}

		for len(window) < n {
			pull()
		}

		for held > 0 {
			group := make([]T, n)
			copy(group, window)
			if !yield(group) {
				return
			}

			window = append(window[:0], window[1:]...)
			held--
			pull()
		}
	}
}

// Every returns the elements of s at indices 0, n, 2n, and so on.
//
// Every panics if n is less than 1.
func Every[T any](s iter.Seq[T], n int) iter.Seq[T] {
	if n < 1 {
		panic("seq: stride must be positive")
	}

	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i%n == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

// Groupwise splits s into consecutive, non-overlapping chunks of n
// elements. The final chunk is padded with fill if s runs out.
func Groupwise[T any](s iter.Seq[T], n int, fill T) iter.Seq[[]T] {
	return Every(Groups(s, n, fill), n)
}

func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}
