package BloomFilter

import (
	"math"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maths"
	"github.com/g-m-twostay/go-containers/Sets"
)

// Filter is a bloom filter over byte strings: Has may report false positives
// but never false negatives, and elements can't be removed.
type Filter struct {
	bits  Go_Containers.BitArray
	seeds []Go_Containers.Hasher
	mask  uint
}

// New Filter sized for n elements at false-positive rate p (0 < p < 1).
// The bit count is rounded up to a power of two so indexing is a mask.
func New(n uint, p float64) (*Filter, error) {
	if n == 0 || p <= 0 || p >= 1 {
		return nil, &Sets.ConfigError{Reason: "need n > 0 and 0 < p < 1"}
	}
	m := Maths.NextPow2(uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))))
	k := Maths.Clamp(int(math.Round(float64(m)/float64(n)*math.Ln2)), 1, 30)
	u := &Filter{bits: Go_Containers.NewBitArray(int(m)), mask: m - 1}
	for i := 0; i < k; i++ {
		u.seeds = append(u.seeds, Go_Containers.Hasher(Go_Containers.CheapRandN(math.MaxUint32)))
	}
	return u, nil
}

// Bits in the backing array.
func (u *Filter) Bits() int {
	return u.bits.Len()
}

// Hashes per element.
func (u *Filter) Hashes() int {
	return len(u.seeds)
}

// Add b to the filter. b must not be empty.
func (u *Filter) Add(b []byte) {
	for _, s := range u.seeds {
		u.bits.Set(int(s.HashBytes(b) & u.mask))
	}
}

// Has reports whether b may have been added; false is definite.
func (u *Filter) Has(b []byte) bool {
	for _, s := range u.seeds {
		if !u.bits.Get(int(s.HashBytes(b) & u.mask)) {
			return false
		}
	}
	return true
}

// AddString is Add for a string without copying it.
func (u *Filter) AddString(v string) {
	for _, s := range u.seeds {
		u.bits.Set(int(s.HashString(v) & u.mask))
	}
}

// HasString is Has for a string without copying it.
func (u *Filter) HasString(v string) bool {
	for _, s := range u.seeds {
		if !u.bits.Get(int(s.HashString(v) & u.mask)) {
			return false
		}
	}
	return true
}

// Clear empties the filter; the sizing parameters are kept.
func (u *Filter) Clear() {
	u.bits.Reset()
}
