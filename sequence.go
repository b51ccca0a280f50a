package converge

import (
	"strconv"
	"strings"
)

// Sequence is an ordered distribution of balls among positions.
type Sequence []int

// NewSequence returns a Sequence holding its own copy of vals.
func NewSequence(vals ...int) Sequence {
	s := make(Sequence, len(vals))
	copy(s, vals)
	return s
}

func (s Sequence) Clone() Sequence {
	return NewSequence(s...)
}

// Uniform reports whether every element equals v. An empty sequence is uniform.
func (s Sequence) Uniform(v int) bool {
	for _, e := range s {
		if e != v {
			return false
		}
	}
	return true
}

func (s Sequence) Sum() int {
	var sum int
	for _, e := range s {
		sum += e
	}
	return sum
}

// redistribute moves the two leading elements toward each other when the
// first is larger. It reports whether anything changed.
func (s Sequence) redistribute() bool {
	if len(s) < 2 || s[0] <= s[1] {
		return false
	}
	temp := s[0] - 1
	s[0] = s[1] + 1
	s[1] = temp
	return true
}

// rotate moves the first element to the end.
func (s Sequence) rotate() {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}

// String formats the sequence as space separated integers.
func (s Sequence) String() string {
	var b strings.Builder
	for i, e := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(e))
	}
	return b.String()
}
