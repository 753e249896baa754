// Package bitset provides a fixed-length bit vector sized at runtime,
// backed by a slice of 64-bit words.
package bitset

import (
	"math/bits"
	"strings"
)

const wordSize = 64

// BitSet is a fixed-length sequence of bits indexed from 0.
// The zero value is not usable; construct with New.
type BitSet struct {
	length int
	words  []uint64
}

// New returns a BitSet of the given length with all bits cleared.
func New(length int) *BitSet {
	if length < 0 {
		length = 0
	}
	return &BitSet{
		length: length,
		words:  make([]uint64, (length+wordSize-1)/wordSize),
	}
}

// Len returns the number of bits the set was created with.
func (s *BitSet) Len() int {
	return s.length
}

// Set sets the bit at index i. Out-of-range indices are ignored.
func (s *BitSet) Set(i int) {
	if i < 0 || i >= s.length {
		return
	}
	s.words[i/wordSize] |= 1 << (i % wordSize)
}

// Test reports whether the bit at index i is set.
func (s *BitSet) Test(i int) bool {
	if i < 0 || i >= s.length {
		return false
	}
	return s.words[i/wordSize]&(1<<(i%wordSize)) != 0
}

// Count returns the number of set bits.
func (s *BitSet) Count() int {
	count := 0
	for _, word := range s.words {
		count += bits.OnesCount64(word)
	}
	return count
}

// Contains reports whether every bit set in other is also set in s.
// Both sets must have the same length.
func (s *BitSet) Contains(other *BitSet) bool {
	for i, word := range other.words {
		if word&^s.words[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both sets have the same length and the same bits set.
func (s *BitSet) Equal(other *BitSet) bool {
	if s.length != other.length {
		return false
	}
	for i, word := range s.words {
		if word != other.words[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s *BitSet) Clone() *BitSet {
	clone := &BitSet{
		length: s.length,
		words:  make([]uint64, len(s.words)),
	}
	copy(clone.words, s.words)
	return clone
}

func (s *BitSet) String() string {
	var builder strings.Builder
	builder.Grow(s.length)
	for i := range s.length {
		if s.Test(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}
