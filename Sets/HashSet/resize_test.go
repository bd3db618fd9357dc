package HashSet

import (
	"errors"
	"hash/maphash"
	"math/bits"
	"testing"

	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Sets"
)

func TestOpenAddr_Growth(t *testing.T) {
	S, _ := New[int](OpenAddressing, MinCapacity)
	for i := 1; i <= 10; i++ {
		if S.Put(i) != nil {
			t.Fatal("wrong put")
		}
	}
	c := capOf(S)
	if bits.OnesCount(uint(c)) != 1 {
		t.Error("capacity isn't a power of two", c)
	}
	if float64(S.Size()) >= growAt*float64(c) {
		t.Error("load factor not restored by growth", c)
	}
	// 2 -> 4 at the 3rd put, 8 at the 4th, 16 at the 7th.
	if c != 16 {
		t.Error("wrong capacity", c)
	}
}

func TestOpenAddr_ShrinkFloor(t *testing.T) {
	S, _ := New[int](OpenAddressing, MinCapacity)
	for i := 1; i <= 100; i++ {
		S.Put(i)
	}
	if capOf(S) != 256 {
		t.Fatal("wrong grown capacity", capOf(S))
	}
	for i := 1; i <= 100; i++ {
		if S.Remove(i) != nil {
			t.Fatal("wrong remove", i)
		}
	}
	// Halving stops once capacity/2 is no longer above the initial
	// capacity, so the floor from initial 2 is 4.
	if capOf(S) != 4 {
		t.Error("wrong shrunk capacity", capOf(S))
	}
	if S.Size() != 0 {
		t.Error("wrong size")
	}
}

func TestOpenAddr_ShrinkNeverBelowLargeInitial(t *testing.T) {
	S, _ := New[int](OpenAddressing, 32)
	for i := 1; i <= 40; i++ {
		S.Put(i)
	}
	for i := 1; i <= 40; i++ {
		S.Remove(i)
	}
	if capOf(S) < 32 {
		t.Error("capacity fell below initial", capOf(S))
	}
}

func TestOpenAddr_ClusterRepair(t *testing.T) {
	S, _ := New[int](OpenAddressing, 5)
	oa := S.store.(*openAddr[int])
	a := 1
	b := 2
	for ; ; b++ { // find a value that collides with a
		if oa.home(&b) == oa.home(&a) && b != a {
			break
		}
	}
	if S.Put(a) != nil || S.Put(b) != nil {
		t.Fatal("wrong put")
	}
	if S.Remove(a) != nil {
		t.Fatal("wrong remove")
	}
	if ok, _ := S.Has(b); !ok {
		t.Error("collision follower lost after repair")
	}
	if S.Size() != 1 {
		t.Error("wrong size")
	}
	if S.Remove(b) != nil {
		t.Error("follower not removable after repair")
	}
}

func TestOpenAddr_RepairAcrossManyRemovals(t *testing.T) {
	S, _ := New[int](OpenAddressing, MinCapacity)
	for i := 1; i <= 200; i++ {
		S.Put(i)
	}
	for i := 1; i <= 200; i += 2 {
		if S.Remove(i) != nil {
			t.Fatal("wrong remove", i)
		}
		for j := i + 1; j <= 200; j += 2 {
			if ok, _ := S.Has(j); !ok {
				t.Fatal("repair lost", j, "after removing", i)
			}
		}
	}
	if S.Size() != 100 {
		t.Error("wrong size")
	}
}

func TestOpenAddr_FullError(t *testing.T) {
	oa := newOpenAddr[int](2, maphash.MakeSeed())
	if oa.insert(1) != nil || oa.insert(2) != nil {
		t.Fatal("wrong insert")
	}
	var full *Sets.FullError
	if !errors.As(oa.insert(3), &full) {
		t.Error("no FullError on a full table")
	}
	var dup *Sets.DuplicateError
	if !errors.As(oa.insert(1), &dup) {
		t.Error("duplicate lookup broken on a full table")
	}
	if oa.sz != 2 {
		t.Error("wrong size")
	}
}

func TestChained_GrowthByFilledBuckets(t *testing.T) {
	S, _ := New[int](SeparateChaining, MinCapacity)
	for i := 1; i <= 100; i++ {
		if S.Put(i) != nil {
			t.Fatal("wrong put")
		}
	}
	c := S.store.(*chained[int])
	if bits.OnesCount(uint(len(c.buckets))) != 1 {
		t.Error("capacity isn't a power of two", len(c.buckets))
	}
	filled := 0
	for _, b := range c.buckets {
		if b != nil {
			filled++
		}
	}
	if filled != c.filled {
		t.Error("filled count drifted", filled, c.filled)
	}
	for i := 1; i <= 100; i++ {
		if ok, _ := S.Has(i); !ok {
			t.Error("element lost across growth", i)
		}
	}
}

func TestChained_ShrinkNeverFiresOnPow2Capacities(t *testing.T) {
	// The shrink trigger is |filled - 0.3*capacity| < 0.1, which only fires
	// when the filled count sits exactly on 0.3*capacity. Capacities double
	// from 2, and 0.3*2^k is never within 0.1 of an integer, so removals
	// can never shrink the bucket array here.
	S, _ := New[int](SeparateChaining, MinCapacity)
	for i := 1; i <= 100; i++ {
		S.Put(i)
	}
	grown := capOf(S)
	for i := 1; i <= 100; i++ {
		if S.Remove(i) != nil {
			t.Fatal("wrong remove", i)
		}
	}
	if capOf(S) != grown {
		t.Error("shrink fired on a power-of-two capacity", grown, capOf(S))
	}
	if S.Size() != 0 || S.store.(*chained[int]).filled != 0 {
		t.Error("wrong counters after removals")
	}
}

func TestChained_BucketDeallocation(t *testing.T) {
	c := newChained[int](MinCapacity, maphash.MakeSeed())
	if c.put(1) != nil {
		t.Fatal("wrong put")
	}
	i := c.home(addr(1))
	if c.buckets[i] == nil || c.filled != 1 {
		t.Fatal("bucket not allocated")
	}
	if c.remove(1) != nil {
		t.Fatal("wrong remove")
	}
	if c.buckets[i] != nil || c.filled != 0 {
		t.Error("empty bucket not deallocated")
	}
}

func TestChained_RehashRelinksNodes(t *testing.T) {
	c := newChained[int](MinCapacity, maphash.MakeSeed())
	for i := 1; i <= 16; i++ {
		c.put(i)
	}
	before := map[*Lists.Node[int]]bool{}
	for _, b := range c.buckets {
		if b != nil {
			for n := b.Front(); n != nil; n = n.Next() {
				before[n] = true
			}
		}
	}
	c.rehash(len(c.buckets) * 2)
	after := 0
	for _, b := range c.buckets {
		if b != nil {
			for n := b.Front(); n != nil; n = n.Next() {
				if !before[n] {
					t.Error("rehash recreated a node")
				}
				after++
			}
		}
	}
	if after != len(before) {
		t.Error("node count changed across rehash", after, len(before))
	}
}

func addr(v int) *int {
	return &v
}
