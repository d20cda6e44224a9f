package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// Offset iterates over items, keyed by their index plus base.
func Offset[T any](base int, items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for n, item := range items {
			if !yield(base+n, item) {
				return
			}
		}
	}
}

// Chunk splits items into consecutive runs of at most size elements, keyed
// by the index of the first element of each run.
func Chunk[T any](items []T, size int) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for n := 0; n < len(items); n += size {
			end := min(n+size, len(items))
			if !yield(n, items[n:end]) {
				return
			}
		}
	}
}
