package HashSet

import (
	"hash/maphash"

	"github.com/g-m-twostay/go-containers/Sets"
)

// Strategy selects how the set resolves hash collisions.
type Strategy byte

const (
	// SeparateChaining keeps a linked list of colliding elements per bucket.
	SeparateChaining Strategy = iota
	// OpenAddressing keeps every element in the bucket array itself and
	// probes forward on collision.
	OpenAddressing
)

// MinCapacity is the smallest allowed initial bucket count.
const MinCapacity = 2

const (
	growAt    = 0.7
	shrinkAt  = 0.3
	shrinkTol = 0.1
)

type store[E comparable] interface {
	has(E) bool
	put(E) error
	remove(E) error
	clear()
	size() uint
	take() E
	each(func(E) bool)
}

// HashSet of type E. It holds no state beyond the selected store.
type HashSet[E comparable] struct {
	store store[E]
}

// New HashSet using strategy s with the given initial bucket count.
// initCap below MinCapacity, or an unknown strategy, is a ConfigError.
func New[E comparable](s Strategy, initCap int) (*HashSet[E], error) {
	if initCap < MinCapacity {
		return nil, &Sets.ConfigError{Reason: "initial capacity must be at least 2"}
	}
	seed := maphash.MakeSeed()
	switch s {
	case SeparateChaining:
		return &HashSet[E]{newChained[E](initCap, seed)}, nil
	case OpenAddressing:
		return &HashSet[E]{newOpenAddr[E](initCap, seed)}, nil
	}
	return nil, &Sets.ConfigError{Reason: "unknown strategy"}
}

// NewDefault is a separate chaining HashSet with the minimum capacity.
func NewDefault[E comparable]() *HashSet[E] {
	u, _ := New[E](SeparateChaining, MinCapacity)
	return u
}

// Put e into the set. Fails with DuplicateError if e is already present and
// ZeroValueError if e is the zero value.
func (u *HashSet[E]) Put(e E) error {
	if e == *new(E) {
		return &Sets.ZeroValueError{}
	}
	return u.store.put(e)
}

// Has e in the set. Fails with ZeroValueError if e is the zero value.
func (u *HashSet[E]) Has(e E) (bool, error) {
	if e == *new(E) {
		return false, &Sets.ZeroValueError{}
	}
	return u.store.has(e), nil
}

// Remove e from the set. Fails with NotFoundError if e is absent and
// ZeroValueError if e is the zero value.
func (u *HashSet[E]) Remove(e E) error {
	if e == *new(E) {
		return &Sets.ZeroValueError{}
	}
	return u.store.remove(e)
}

// Clear empties the set and returns the bucket array to its initial capacity.
func (u *HashSet[E]) Clear() {
	u.store.clear()
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.store.size()
}

// Take an arbitrary element from the set. Returns the zero value if the set is
// empty. Doesn't guarantee which element it will return.
func (u *HashSet[E]) Take() E {
	return u.store.take()
}

// Range over the elements in bucket order and call f on each until f returns
// false. The set must not be mutated while Range is in progress.
func (u *HashSet[E]) Range(f func(E) bool) {
	u.store.each(f)
}
