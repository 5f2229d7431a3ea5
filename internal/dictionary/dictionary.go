// Package dictionary implements the append-only name pool of a container.
//
// Every pushed string is stored once, NUL-terminated, and addressed by the
// byte range it occupies. Identity is the resource CRC of the encoded bytes
// plus terminator; two distinct strings with the same CRC share one range.
package dictionary

import (
	"fmt"

	"github.com/meigma/utf/hash"
	"github.com/meigma/utf/internal/utftype"
)

// DefaultWordSize is the scratch slot size, terminator included.
const DefaultWordSize = 0xff

// Range is a [Begin, End) byte range within the dictionary. End excludes
// the NUL terminator.
type Range struct {
	Begin int
	End   int
}

// Dictionary is a content-deduplicated string pool.
type Dictionary struct {
	word   []byte
	ranges map[uint32]Range
	chunks [][]byte
	size   int
}

// New returns an empty dictionary whose words may be at most wordSize-1
// bytes long. A wordSize of zero selects DefaultWordSize.
func New(wordSize int) *Dictionary {
	if wordSize <= 0 {
		wordSize = DefaultWordSize
	}
	return &Dictionary{
		word:   make([]byte, wordSize),
		ranges: make(map[uint32]Range),
	}
}

// Push stores value if it has not been seen and returns its range.
func (d *Dictionary) Push(value string) (Range, error) {
	if len(value) >= len(d.word) {
		return Range{}, fmt.Errorf("%w: word of %d bytes does not fit slot of %d", utftype.ErrRange, len(value), len(d.word))
	}

	n := copy(d.word, value)
	d.word[n] = 0
	key := hash.CRC32(d.word[:n+1])

	if r, ok := d.ranges[key]; ok {
		return r, nil
	}

	r := Range{Begin: d.size, End: d.size + n}
	d.ranges[key] = r
	d.chunks = append(d.chunks, append([]byte(nil), d.word[:n+1]...))
	d.size += n + 1
	return r, nil
}

// Len returns the number of bytes stored, terminators included.
func (d *Dictionary) Len() int {
	return d.size
}

// Count returns the number of distinct words.
func (d *Dictionary) Count() int {
	return len(d.chunks)
}

// Bytes returns the pool as one contiguous slice.
func (d *Dictionary) Bytes() []byte {
	return d.AppendTo(make([]byte, 0, d.size))
}

// AppendTo appends the pool to dst.
func (d *Dictionary) AppendTo(dst []byte) []byte {
	for _, chunk := range d.chunks {
		dst = append(dst, chunk...)
	}
	return dst
}
