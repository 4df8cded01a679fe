package seqs

// CodePoints returns the Unicode code points of s.
// Invalid UTF-8 bytes become U+FFFD.
func CodePoints(s string) Int32Seq {
	return AdoptNumbers([]rune(s))
}

// CodePointString interprets the elements as code points and returns the string they spell.
func (n Numeric[N]) CodePointString() string {
	runes := make([]rune, len(n.seq.values))
	for i, v := range n.seq.values {
		runes[i] = rune(v)
	}
	return string(runes)
}

// ReplaceCodePoint replaces every occurrence of target with replacement.
func (n Numeric[N]) ReplaceCodePoint(target, replacement rune) Numeric[N] {
	from, to := N(target), N(replacement)
	return n.Map(func(v N) N {
		if v == from {
			return to
		}
		return v
	})
}
