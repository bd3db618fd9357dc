package HashSet

import (
	"hash/maphash"
	"math"

	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Maths"
	"github.com/g-m-twostay/go-containers/Sets"
)

// chained resolves collisions with a doubly linked list per bucket. A nil
// bucket is unallocated; filled counts allocated buckets and drives resizing
// instead of the element count.
type chained[E comparable] struct {
	buckets []*Lists.Linked[E]
	sz      uint
	filled  int
	initCap int
	seed    maphash.Seed
}

func newChained[E comparable](initCap int, seed maphash.Seed) *chained[E] {
	return &chained[E]{buckets: make([]*Lists.Linked[E], initCap), initCap: initCap, seed: seed}
}

func (u *chained[E]) home(e *E) int {
	return Maths.Abs(int(maphash.Comparable(u.seed, *e))) % len(u.buckets)
}

func (u *chained[E]) has(e E) bool {
	if b := u.buckets[u.home(&e)]; b != nil {
		for n := b.Front(); n != nil; n = n.Next() {
			if n.Value == e {
				return true
			}
		}
	}
	return false
}

func (u *chained[E]) put(e E) error {
	if float64(u.filled) >= growAt*float64(len(u.buckets)) {
		u.rehash(len(u.buckets) * 2)
	}
	i := u.home(&e)
	b := u.buckets[i]
	if b == nil {
		b = Lists.New[E]()
		u.buckets[i] = b
		u.filled++
	} else {
		for n := b.Front(); n != nil; n = n.Next() {
			if n.Value == e {
				return &Sets.DuplicateError{}
			}
		}
	}
	b.PushFront(e)
	u.sz++
	return nil
}

func (u *chained[E]) remove(e E) error {
	i := u.home(&e)
	b := u.buckets[i]
	if b == nil {
		return &Sets.NotFoundError{}
	}
	n := b.Front()
	for ; n != nil; n = n.Next() {
		if n.Value == e {
			break
		}
	}
	if n == nil {
		return &Sets.NotFoundError{}
	}
	b.Detach(n)
	if b.Empty() {
		u.buckets[i] = nil
		u.filled--
	}
	u.sz--
	// Shrink is a near-equality test on the filled-bucket count, so it only
	// fires when filled lands exactly on 0.3*capacity; with a power-of-two
	// capacity ladder that never happens.
	if math.Abs(float64(u.filled)-shrinkAt*float64(len(u.buckets))) < shrinkTol && len(u.buckets)/2 > u.initCap {
		u.rehash(len(u.buckets) / 2)
	}
	return nil
}

// rehash re-homes every node into a bucket array of newCap, relinking the
// existing nodes rather than recreating them, and recounts filled from
// scratch.
func (u *chained[E]) rehash(newCap int) {
	old := u.buckets
	u.buckets = make([]*Lists.Linked[E], newCap)
	u.filled = 0
	for _, b := range old {
		if b == nil {
			continue
		}
		for n := b.Front(); n != nil; {
			next := n.Next()
			b.Detach(n)
			i := u.home(&n.Value)
			nb := u.buckets[i]
			if nb == nil {
				nb = Lists.New[E]()
				u.buckets[i] = nb
				u.filled++
			}
			nb.AttachFront(n)
			n = next
		}
	}
}

func (u *chained[E]) clear() {
	u.buckets = make([]*Lists.Linked[E], u.initCap)
	u.sz, u.filled = 0, 0
}

func (u *chained[E]) size() uint {
	return u.sz
}

func (u *chained[E]) take() (e E) {
	for _, b := range u.buckets {
		if b != nil {
			return b.Front().Value
		}
	}
	return
}

func (u *chained[E]) each(f func(E) bool) {
	for _, b := range u.buckets {
		if b == nil {
			continue
		}
		for n := b.Front(); n != nil; n = n.Next() {
			if !f(n.Value) {
				return
			}
		}
	}
}
