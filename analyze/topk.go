// Bounded top-K retention and map ranking helpers.
//
// TopK keeps the K greatest elements seen so far in a binary min-heap, so
// the smallest retained element is always items[0]. Layout follows the
// canonical container/heap example: https://pkg.go.dev/container/heap

package analyze

import (
	"cmp"
	"sort"
)

// TopK retains at most capacity elements, the greatest under less.
type TopK[T any] struct {
	less     func(a, b T) bool
	capacity int
	items    []T
}

// NewTopK builds an empty tracker. less must be a strict total order;
// capacity must be positive.
func NewTopK[T any](capacity int, less func(a, b T) bool) *TopK[T] {
	if capacity <= 0 {
		panic("topk: capacity must be positive")
	}
	return &TopK[T]{less: less, capacity: capacity}
}

// Len returns the number of retained elements.
func (k *TopK[T]) Len() int { return len(k.items) }

// Full reports whether the tracker holds capacity elements.
func (k *TopK[T]) Full() bool { return len(k.items) == k.capacity }

// Min returns the smallest retained element. The second return is false
// while the tracker is empty.
func (k *TopK[T]) Min() (T, bool) {
	if len(k.items) == 0 {
		var zero T
		return zero, false
	}
	return k.items[0], true
}

// Offer inserts v, evicting the current minimum when full. When full and v
// is not greater than the minimum, the offer is a no-op and Offer returns
// false.
func (k *TopK[T]) Offer(v T) bool {
	if len(k.items) < k.capacity {
		k.items = append(k.items, v)
		k.siftUp(len(k.items) - 1)
		return true
	}
	if !k.less(k.items[0], v) {
		return false
	}
	k.items[0] = v
	k.siftDown(0)
	return true
}

// Descending returns the retained elements greatest first.
func (k *TopK[T]) Descending() []T {
	out := make([]T, len(k.items))
	copy(out, k.items)
	sort.Slice(out, func(i, j int) bool { return k.less(out[j], out[i]) })
	return out
}

func (k *TopK[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !k.less(k.items[i], k.items[parent]) {
			return
		}
		k.items[i], k.items[parent] = k.items[parent], k.items[i]
		i = parent
	}
}

func (k *TopK[T]) siftDown(i int) {
	n := len(k.items)
	for {
		smallest := i
		if l := 2*i + 1; l < n && k.less(k.items[l], k.items[smallest]) {
			smallest = l
		}
		if r := 2*i + 2; r < n && k.less(k.items[r], k.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		k.items[i], k.items[smallest] = k.items[smallest], k.items[i]
		i = smallest
	}
}

// Entry pairs a counter key with the value it ranked on.
type Entry[V cmp.Ordered] struct {
	Key   string
	Value V
}

// TopNBy returns the n largest entries of m, value descending. Equal values
// order by key ascending so reports are reproducible.
func TopNBy[V cmp.Ordered](n int, m map[string]V) []Entry[V] {
	entries := collect(m)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})
	return clip(entries, n)
}

// BottomNBy returns the n smallest entries of m, value ascending with ties
// by key ascending.
func BottomNBy[V cmp.Ordered](n int, m map[string]V) []Entry[V] {
	entries := collect(m)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value < entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})
	return clip(entries, n)
}

func collect[V cmp.Ordered](m map[string]V) []Entry[V] {
	entries := make([]Entry[V], 0, len(m))
	for key, value := range m {
		entries = append(entries, Entry[V]{Key: key, Value: value})
	}
	return entries
}

func clip[V cmp.Ordered](entries []Entry[V], n int) []Entry[V] {
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
