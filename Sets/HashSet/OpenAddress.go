package HashSet

import (
	"hash/maphash"

	"github.com/g-m-twostay/go-containers/Maths"
	"github.com/g-m-twostay/go-containers/Sets"
)

// slot is either empty or holds exactly one element; used is the tag, the
// element's value is never a sentinel.
type slot[E comparable] struct {
	element E
	used    bool
}

type openAddr[E comparable] struct {
	slots   []slot[E]
	sz      uint
	initCap int
	seed    maphash.Seed
}

func newOpenAddr[E comparable](initCap int, seed maphash.Seed) *openAddr[E] {
	return &openAddr[E]{slots: make([]slot[E], initCap), initCap: initCap, seed: seed}
}

func (u *openAddr[E]) home(e *E) int {
	return Maths.Abs(int(maphash.Comparable(u.seed, *e))) % len(u.slots)
}

// find probes linearly from e's home slot. at is the index of the slot holding
// e, or -1. free is the first empty slot the probe reached, or -1 when the
// probe came back around to the element it started at without hitting one.
func (u *openAddr[E]) find(e E) (at, free int) {
	i := u.home(&e)
	if !u.slots[i].used {
		return -1, i
	}
	head := u.slots[i].element
	for {
		if u.slots[i].element == e {
			return i, -1
		}
		if i++; i == len(u.slots) {
			i = 0
		}
		if !u.slots[i].used {
			return -1, i
		}
		if u.slots[i].element == head {
			return -1, -1
		}
	}
}

func (u *openAddr[E]) has(e E) bool {
	at, _ := u.find(e)
	return at > -1
}

// insert places e without a growth check; put, remove's cluster repair and
// rehash all share it.
func (u *openAddr[E]) insert(e E) error {
	at, free := u.find(e)
	if at > -1 {
		return &Sets.DuplicateError{}
	}
	if free < 0 {
		return &Sets.FullError{}
	}
	u.slots[free] = slot[E]{e, true}
	u.sz++
	return nil
}

func (u *openAddr[E]) put(e E) error {
	if float64(u.sz) >= growAt*float64(len(u.slots)) {
		u.rehash(len(u.slots) * 2)
	}
	return u.insert(e)
}

func (u *openAddr[E]) remove(e E) error {
	at, _ := u.find(e)
	if at < 0 {
		return &Sets.NotFoundError{}
	}
	u.slots[at] = slot[E]{}
	u.sz--
	// Clearing a slot can cut entries after it off from their home index,
	// so every element in the occupied run that follows is pulled out and
	// inserted again. The pull decrements sz, the insert restores it.
	for i := (at + 1) % len(u.slots); u.slots[i].used; i = (i + 1) % len(u.slots) {
		moved := u.slots[i].element
		u.slots[i] = slot[E]{}
		u.sz--
		u.insert(moved)
	}
	if float64(u.sz) <= shrinkAt*float64(len(u.slots)) && len(u.slots)/2 > u.initCap {
		u.rehash(len(u.slots) / 2)
	}
	return nil
}

func (u *openAddr[E]) rehash(newCap int) {
	old := u.slots
	u.slots = make([]slot[E], newCap)
	u.sz = 0
	for i := range old {
		if old[i].used {
			u.insert(old[i].element)
		}
	}
}

func (u *openAddr[E]) clear() {
	u.slots = make([]slot[E], u.initCap)
	u.sz = 0
}

func (u *openAddr[E]) size() uint {
	return u.sz
}

func (u *openAddr[E]) take() (e E) {
	for i := range u.slots {
		if u.slots[i].used {
			return u.slots[i].element
		}
	}
	return
}

func (u *openAddr[E]) each(f func(E) bool) {
	for i := range u.slots {
		if u.slots[i].used && !f(u.slots[i].element) {
			return
		}
	}
}
