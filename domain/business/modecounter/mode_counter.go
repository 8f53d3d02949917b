package modecounter

import (
	"cmp"
	"slices"
)

// Frequency how many times Value was counted
// + Percentage: Count over the total amount of values counted, from 0 to 100
type Frequency[T cmp.Ordered] struct {
	Value      T       `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ModeCounter struct that counts how many times each value of a column appears
// + counters: value -> amount of times the value was counted
// + total: amount of values counted
type ModeCounter[T cmp.Ordered] struct {
	counters map[T]int
	total    int
}

func NewModeCounter[T cmp.Ordered]() *ModeCounter[T] {
	return &ModeCounter[T]{
		counters: make(map[T]int),
	}
}

func (mc *ModeCounter[T]) UpdateCounter(value T) {
	mc.counters[value] += 1
	mc.total += 1
}

func (mc *ModeCounter[T]) GetCounter(value T) int {
	return mc.counters[value]
}

// GetTotal returns the amount of values counted
func (mc *ModeCounter[T]) GetTotal() int {
	return mc.total
}

// Mode returns the modal value and its count. If several values share the highest count the
// smallest one wins. The boolean is false when nothing was counted
func (mc *ModeCounter[T]) Mode() (T, int, bool) {
	var mode T
	maxCount := 0
	for value, count := range mc.counters {
		if count > maxCount || (count == maxCount && value < mode) {
			mode = value
			maxCount = count
		}
	}

	return mode, maxCount, maxCount > 0
}

// Distribution returns every value with its count, most frequent first. Values with the same count
// are sorted in ascending order
func (mc *ModeCounter[T]) Distribution() []Frequency[T] {
	distribution := make([]Frequency[T], 0, len(mc.counters))
	for value, count := range mc.counters {
		distribution = append(distribution, Frequency[T]{
			Value:      value,
			Count:      count,
			Percentage: 100 * float64(count) / float64(mc.total),
		})
	}

	slices.SortFunc(distribution, func(a, b Frequency[T]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})

	return distribution
}
