// SPDX-License-Identifier: MIT

// Package matrix - range normalization.
//
// Purpose:
//   - Express every standard range form (a..b, a..=b, a.., ..b, ..=b, ..) as a value.
//   - Resolve any of them against a default [0, len) into a canonical half-open Interval.
//
// Policy:
//   - Resolve never fails and never allocates. A resolved Interval with Start > End
//     (or a negative Start) is accepted here and rejected by the consumer at
//     slice time (ValidateInterval), never silently clamped.

package matrix

import "fmt"

// boundKind tags the three bound shapes.
type boundKind uint8

const (
	boundUnbounded boundKind = iota // omitted bound; resolves to the default
	boundIncluded                   // the index itself belongs to the range
	boundExcluded                   // the index is just outside the range
)

// Bound is one end of a Range.
type Bound struct {
	kind boundKind
	idx  int
}

// Included returns a bound that contains i.
func Included(i int) Bound { return Bound{kind: boundIncluded, idx: i} }

// Excluded returns a bound that stops just short of i.
func Excluded(i int) Bound { return Bound{kind: boundExcluded, idx: i} }

// Unbounded returns an omitted bound.
func Unbounded() Bound { return Bound{kind: boundUnbounded} }

// Range is an unresolved range expression. The zero value is Full().
type Range struct {
	start Bound
	end   Bound
}

// NewRange builds a Range from arbitrary bounds (including an excluded start).
func NewRange(start, end Bound) Range { return Range{start: start, end: end} }

// Span is a..b (end exclusive).
func Span(a, b int) Range { return Range{start: Included(a), end: Excluded(b)} }

// SpanInclusive is a..=b.
func SpanInclusive(a, b int) Range { return Range{start: Included(a), end: Included(b)} }

// From is a.. (open end).
func From(a int) Range { return Range{start: Included(a), end: Unbounded()} }

// To is ..b (end exclusive).
func To(b int) Range { return Range{start: Unbounded(), end: Excluded(b)} }

// ToInclusive is ..=b.
func ToInclusive(b int) Range { return Range{start: Unbounded(), end: Included(b)} }

// Full is .. (both ends omitted).
func Full() Range { return Range{} }

// Resolve normalizes r against the default interval def:
//   - omitted start → def.Start; included start s → s; excluded start s → s+1;
//   - omitted end → def.End; included end e → e+1; excluded end e → e.
//
// Complexity: O(1). Never fails; see package policy above.
func (r Range) Resolve(def Interval) Interval {
	var out Interval

	switch r.start.kind {
	case boundIncluded:
		out.Start = r.start.idx
	case boundExcluded:
		out.Start = r.start.idx + 1
	default:
		out.Start = def.Start
	}

	switch r.end.kind {
	case boundIncluded:
		out.End = r.end.idx + 1
	case boundExcluded:
		out.End = r.end.idx
	default:
		out.End = def.End
	}

	return out
}

// String renders the range in conventional a..b notation.
func (r Range) String() string {
	var s, e string
	switch r.start.kind {
	case boundIncluded:
		s = fmt.Sprint(r.start.idx)
	case boundExcluded:
		s = fmt.Sprintf("(%d", r.start.idx)
	}
	switch r.end.kind {
	case boundIncluded:
		e = fmt.Sprintf("=%d", r.end.idx)
	case boundExcluded:
		e = fmt.Sprint(r.end.idx)
	}

	return s + ".." + e
}

// Interval is the canonical half-open [Start, End) index range.
type Interval struct {
	Start int
	End   int
}

var _ Lengther = Interval{}

// Len returns End-Start (0 for an inverted interval).
func (iv Interval) Len() int {
	if iv.End < iv.Start {
		return 0
	}

	return iv.End - iv.Start
}

// Empty reports whether the interval addresses no index.
func (iv Interval) Empty() bool { return iv.Len() == 0 }

// Contains reports whether Start ≤ i < End.
func (iv Interval) Contains(i int) bool { return i >= iv.Start && i < iv.End }

// Offset shifts both ends by k. Slicing composes intervals this way:
// the child's relative interval is offset by the parent's absolute Start.
func (iv Interval) Offset(k int) Interval { return Interval{Start: iv.Start + k, End: iv.End + k} }

// overlaps reports whether two non-empty intervals share at least one index.
func (iv Interval) overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End && !iv.Empty() && !o.Empty()
}

// String renders [Start, End).
func (iv Interval) String() string { return fmt.Sprintf("[%d, %d)", iv.Start, iv.End) }

// upTo is the default interval [0, n).
func upTo(n int) Interval { return Interval{Start: 0, End: n} }
