package axisbox

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Cells iterates over every integer point contained in b, axis 0 varying
// fastest. An empty box yields nothing and the number of points yielded
// equals b.Volume().
func Cells[T constraints.Integer, V Vector[T, V]](b Box[T, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		n := b.dim.Len()
		for i := 0; i < n; i++ {
			if b.dim.At(i) == 0 {
				return
			}
		}

		max := b.Max()
		p := b.min
		for {
			if !yield(p) {
				return
			}

			// Odometer step
			i := 0
			for ; i < n; i++ {
				next := p.At(i) + 1
				if next < max.At(i) {
					p = p.With(i, next)
					break
				}
				p = p.With(i, b.min.At(i))
			}
			if i == n {
				return
			}
		}
	}
}
