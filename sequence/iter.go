package sequence

import "iter"

// Take returns a sequence yielding at most the first n elements of seq. It
// stops pulling from seq as soon as n elements were yielded.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for e := range seq {
			if !yield(e) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Symbols flattens a sequence of runs into the sequence of their symbols.
func Symbols(seq iter.Seq[Run]) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for r := range seq {
			if !yield(r.v) {
				return
			}
			if r.n == 2 && !yield(r.v) {
				return
			}
		}
	}
}
