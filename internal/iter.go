package internal

import (
	"iter"
)

// Concat2 chains pair sequences, yielding every pair of seqs[0], then seqs[1], and so on.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
