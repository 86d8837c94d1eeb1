package comptype

import (
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Mask is a set of component indices, e.g. the signature of an archetype.
// The zero value is an empty mask.
type Mask struct {
	words []uint64
}

// Set adds idx to the mask. It panics if idx is negative, e.g. the index
// of an unregistered component type.
func (m *Mask) Set(idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("negative component index %d", idx))
	}

	word := idx >> 6
	for len(m.words) <= word {
		m.words = append(m.words, 0)
	}

	m.words[word] |= 1 << (idx & 63)
}

// Clear removes idx from the mask. Indices that are not set, including
// negative ones, are ignored.
func (m *Mask) Clear(idx int) {
	word := idx >> 6
	if idx >= 0 && word < len(m.words) {
		m.words[word] &^= 1 << (idx & 63)
	}
}

func (m Mask) Has(idx int) bool {
	word := idx >> 6
	return idx >= 0 && word < len(m.words) && m.words[word]&(1<<(idx&63)) != 0
}

// Contains reports whether all indices of sub are also set in m.
func (m Mask) Contains(sub Mask) bool {
	for idx, word := range sub.words {
		var have uint64
		if idx < len(m.words) {
			have = m.words[idx]
		}

		if have&word != word {
			return false
		}
	}

	return true
}

// Count returns the number of indices in the mask.
func (m Mask) Count() int {
	var count int
	for _, word := range m.words {
		count += bits.OnesCount64(word)
	}

	return count
}

// Indices iterates the indices in the mask in ascending order.
func (m Mask) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx, word := range m.words {
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				if !yield(idx<<6 + bit) {
					return
				}

				word &= word - 1
			}
		}
	}
}

func (m Mask) String() string {
	var b strings.Builder

	b.WriteByte('{')
	for idx := range m.Indices() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}

		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteByte('}')

	return b.String()
}
