package graph

import "strings"

// Mask holds the relation of an ordered feature pair (a, b). Each bit names
// one forced assignment: Edge11 reads "a=1 forces b=1", Edge00 "a=0 forces
// b=0" and so on. Equivalently a set bit marks the combination (a=x, b=!y)
// as impossible. Both bits of the same source value together (Edge1q, Edge0q)
// mean that b is related to that value of a but not determined by it, and
// has to be re-checked by a solver.
type Mask uint8

const (
	EdgeNone Mask = 0
	Edge11   Mask = 1 << 0
	Edge10   Mask = 1 << 1
	Edge01   Mask = 1 << 2
	Edge00   Mask = 1 << 3

	Edge1q = Edge11 | Edge10
	Edge0q = Edge01 | Edge00

	MaskAll = Edge1q | Edge0q
)

// Row is the two-bit relation of one source value to the target: nothing,
// a forced true, a forced false, or both (related).
type Row uint8

const (
	RowNone    Row = 0
	RowTrue    Row = 1
	RowFalse   Row = 2
	RowRelated Row = RowTrue | RowFalse
)

// Row returns the part of m that applies when the source has value x.
func (m Mask) Row(x bool) Row {
	if x {
		return Row(m & Edge1q)
	}
	return Row((m & Edge0q) >> 2)
}

// FromRow places r at source value x.
func FromRow(x bool, r Row) Mask {
	if x {
		return Mask(r) & Edge1q
	}
	return (Mask(r) << 2) & Edge0q
}

// Forced reports whether r determines exactly one value of the target.
func (r Row) Forced() bool {
	return r == RowTrue || r == RowFalse
}

// Compose chains the relation ab of (a, b) with the relation bc of (b, c)
// into the relation it forces on (a, c). A forced value of b selects the row
// of bc to copy. If b is only related to a, c becomes related to a whenever
// bc relates them at all. Chaining through an unrelated value yields nothing.
func Compose(ab, bc Mask) Mask {
	var out Mask
	for _, x := range []bool{true, false} {
		switch r := ab.Row(x); r {
		case RowNone:
		case RowTrue, RowFalse:
			out |= FromRow(x, bc.Row(r == RowTrue))
		default:
			if bc != EdgeNone {
				out |= FromRow(x, RowRelated)
			}
		}
	}
	return out
}

// Covers reports whether m carries at least the information of o for both
// source values. A forced row is covered by the same forced row or by both
// bits, a related row by any non-empty row.
func (m Mask) Covers(o Mask) bool {
	for _, x := range []bool{true, false} {
		want, have := o.Row(x), m.Row(x)
		switch {
		case want == RowNone:
		case want.Forced():
			if have != want && have != RowRelated {
				return false
			}
		default:
			if have == RowNone {
				return false
			}
		}
	}
	return true
}

var maskNames = []struct {
	bit  Mask
	name string
}{
	{Edge11, "11"},
	{Edge10, "10"},
	{Edge01, "01"},
	{Edge00, "00"},
}

func (m Mask) String() string {
	if m == EdgeNone {
		return "-"
	}
	var parts []string
	for _, n := range maskNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Negation selects the polarity of both sides of an implication.
type Negation int

const (
	// PosPos is a => b.
	PosPos Negation = iota
	// PosNeg is a => !b.
	PosNeg
	// NegPos is !a => b.
	NegPos
	// NegNeg is !a => !b.
	NegNeg
)

// NegationOf picks the class for an implication between literals of the
// given polarities.
func NegationOf(fromPositive, toPositive bool) Negation {
	n := PosPos
	if !toPositive {
		n += 1
	}
	if !fromPositive {
		n += 2
	}
	return n
}
