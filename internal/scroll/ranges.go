package scroll

import "fmt"

// Range is a contiguous block of ordinals claimed by one family of
// elements, such as the work tiles on the home page.
type Range struct {
	Start int
	Len   int
}

// Index returns the ordinal of the i-th element (zero-based) in the range.
func (rg Range) Index(i int) int {
	if i < 0 || i >= rg.Len {
		panic(fmt.Sprintf("scroll: index %d outside range of %d", i, rg.Len))
	}
	return rg.Start + i
}

// End returns the last ordinal in the range, or Start-1 when empty.
func (rg Range) End() int { return rg.Start + rg.Len - 1 }

// Contains reports whether ordinal falls inside the range.
func (rg Range) Contains(ordinal int) bool {
	return ordinal >= rg.Start && ordinal <= rg.End()
}

// Ranges hands out disjoint ordinal ranges starting at 1, so independent
// component families can share one Registry without colliding: three work
// items take 1..3 and the contact boxes that follow take 4..6. The zero
// value is ready to use.
type Ranges struct {
	next int
}

// NewRanges starts allocating at ordinal 1.
func NewRanges() *Ranges {
	return &Ranges{next: 1}
}

// Claim reserves n consecutive ordinals. Negative n is treated as zero.
func (r *Ranges) Claim(n int) Range {
	if n < 0 {
		n = 0
	}
	if r.next == 0 {
		r.next = 1
	}
	rg := Range{Start: r.next, Len: n}
	r.next += n
	return rg
}
