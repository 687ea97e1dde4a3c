package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool { return a < b }

func TestTopK_NeverExceedsCapacity(t *testing.T) {
	// GIVEN a tracker of capacity 3
	k := NewTopK(3, intLess)

	// WHEN many elements are offered
	for _, v := range []int{5, 1, 3, 2, 15, 12, 32, 24, 41, 4, 2} {
		k.Offer(v)
		if k.Len() > 3 {
			t.Fatalf("capacity exceeded: len %d", k.Len())
		}
	}

	// THEN the three greatest survive, greatest first
	assert.Equal(t, []int{41, 32, 24}, k.Descending())
}

func TestTopK_MinAccessibleWhenFull(t *testing.T) {
	k := NewTopK(2, intLess)
	k.Offer(10)
	k.Offer(20)
	min, ok := k.Min()
	if !ok || min != 10 {
		t.Errorf("Min: got %d, %v", min, ok)
	}
}

func TestTopK_OfferBelowMinIsNoOp(t *testing.T) {
	// GIVEN a full tracker with minimum 10
	k := NewTopK(2, intLess)
	k.Offer(10)
	k.Offer(20)

	// WHEN an element <= the minimum is offered
	if k.Offer(10) {
		t.Error("Offer of equal element must be a no-op when full")
	}
	if k.Offer(3) {
		t.Error("Offer of smaller element must be a no-op when full")
	}

	// THEN the retained set is unchanged
	assert.Equal(t, []int{20, 10}, k.Descending())
}

func TestTopK_EvictsMinimum(t *testing.T) {
	k := NewTopK(2, intLess)
	k.Offer(10)
	k.Offer(20)
	if !k.Offer(15) {
		t.Fatal("Offer above the minimum must be accepted")
	}
	assert.Equal(t, []int{20, 15}, k.Descending())
}

func TestTopK_MinOnEmpty(t *testing.T) {
	k := NewTopK(2, intLess)
	if _, ok := k.Min(); ok {
		t.Error("Min on empty tracker must report absence")
	}
}

func TestTopNBy_AxisSelection(t *testing.T) {
	counts := map[string]int{"A": 15, "B": 15, "C": 1}
	sizes := map[string]int{"A": 300, "B": 200, "C": 3000}

	top := TopNBy(2, counts)
	assert.Equal(t, []Entry[int]{{Key: "A", Value: 15}, {Key: "B", Value: 15}}, top)

	top = TopNBy(2, sizes)
	assert.Equal(t, []Entry[int]{{Key: "C", Value: 3000}, {Key: "A", Value: 300}}, top)
}

func TestBottomNBy_TiesBreakByKey(t *testing.T) {
	counts := map[string]int{"A": 15, "B": 15, "C": 1}
	sizes := map[string]int{"A": 300, "B": 200, "C": 3000}

	bottom := BottomNBy(2, counts)
	assert.Equal(t, []Entry[int]{{Key: "C", Value: 1}, {Key: "A", Value: 15}}, bottom)

	bottom = BottomNBy(2, sizes)
	assert.Equal(t, []Entry[int]{{Key: "B", Value: 200}, {Key: "A", Value: 300}}, bottom)
}

func TestTopNBy_RequestBeyondPopulation(t *testing.T) {
	top := TopNBy(10, map[string]int{"A": 1})
	assert.Len(t, top, 1)
}
