package Go_Containers

import (
	"math/bits"

	"github.com/g-m-twostay/go-containers/Maths"
)

// NewBitArray of at least size bits, rounded up to a whole word.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, Maths.CeilDiv(size, bits.UintSize))}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// First set bit, -1 if none are set.
func (u BitArray) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}

// Reset clears every bit.
func (u BitArray) Reset() {
	for i := range u.bits {
		u.bits[i] = 0
	}
}
