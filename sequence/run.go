package sequence

import "strconv"

// Symbols of the sequence.
const (
	SymbolOne uint8 = 1
	SymbolTwo uint8 = 2
)

// A Run represents the output of one generation step: a single symbol or two
// identical symbols. A Double always repeats one value, so a run mixing two
// different symbols cannot be represented.
type Run struct {
	n uint8
	v uint8
}

// Single returns a run of length 1 holding v.
func Single(v uint8) Run {
	return Run{n: 1, v: v}
}

// Double returns a run of length 2 holding v twice.
func Double(v uint8) Run {
	return Run{n: 2, v: v}
}

// First returns the first symbol of the run.
func (r Run) First() uint8 {
	return r.v
}

// Len returns the number of symbols in the run.
func (r Run) Len() int {
	return int(r.n)
}

// IsDouble reports whether the run holds two symbols.
func (r Run) IsDouble() bool {
	return r.n == 2
}

// AppendTo appends the symbols of the run, in order, to dst and returns the
// extended slice.
func (r Run) AppendTo(dst []uint8) []uint8 {
	if r.n == 2 {
		return append(dst, r.v, r.v)
	}
	return append(dst, r.v)
}

// String returns the run as Single(v) or Double(v,v).
func (r Run) String() string {
	return string(r.appendText(nil))
}

func (r Run) appendText(buf []byte) []byte {
	if r.n == 2 {
		buf = append(buf, "Double("...)
		buf = strconv.AppendUint(buf, uint64(r.v), 10)
		buf = append(buf, ',')
	} else {
		buf = append(buf, "Single("...)
	}
	buf = strconv.AppendUint(buf, uint64(r.v), 10)
	return append(buf, ')')
}
