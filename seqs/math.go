package seqs

import "golang.org/x/exp/constraints"

// Number is the element constraint of the numeric specializations.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the elements, 0 when empty.
// Overflow wraps as in plain Go arithmetic.
func (n Numeric[N]) Sum() N {
	var total N
	for _, v := range n.seq.values {
		total += v
	}
	return total
}

// Product returns the product of the elements.
// An empty sequence has product 0, not 1.
func (n Numeric[N]) Product() N {
	values := n.seq.values
	if len(values) == 0 {
		return 0
	}
	product := values[0]
	for _, v := range values[1:] {
		product *= v
	}
	return product
}

// Average returns Sum()/Size() as a float64. There is no guard for the
// empty case: the result is then NaN.
func (n Numeric[N]) Average() float64 {
	return float64(n.Sum()) / float64(n.Size())
}

func (n Numeric[N]) Max() (N, bool) {
	values := n.seq.values
	if len(values) == 0 {
		var zero N
		return zero, false
	}
	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi, true
}

func (n Numeric[N]) Min() (N, bool) {
	values := n.seq.values
	if len(values) == 0 {
		var zero N
		return zero, false
	}
	lo := values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo, true
}
