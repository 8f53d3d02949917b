package statsaccumulator

import (
	"math"
	"slices"
)

// StatsAccumulator struct that collects the values of a numeric column
// + Counter: amount of values collected
// + Total: sum of the values collected
// + Min: smallest value collected
// + Max: biggest value collected
// + values: every value collected, needed to get the median
type StatsAccumulator struct {
	Counter int     `json:"counter"`
	Total   float64 `json:"total"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	values  []float64
}

func NewStatsAccumulator() *StatsAccumulator {
	return &StatsAccumulator{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

func (sa *StatsAccumulator) UpdateAccumulator(value float64) {
	sa.Counter += 1
	sa.Total += value
	sa.Min = math.Min(sa.Min, value)
	sa.Max = math.Max(sa.Max, value)
	sa.values = append(sa.values, value)
}

func (sa *StatsAccumulator) IsEmpty() bool {
	return sa.Counter == 0
}

func (sa *StatsAccumulator) GetAverage() float64 {
	if sa.Counter == 0 {
		panic("[StatsAccumulator] cannot get average, counter is zero")
	}
	return sa.Total / float64(sa.Counter)
}

// GetMedian returns the middle value, or the mean of the two middle values when Counter is even
func (sa *StatsAccumulator) GetMedian() float64 {
	if sa.Counter == 0 {
		panic("[StatsAccumulator] cannot get median, counter is zero")
	}

	sorted := slices.Clone(sa.values)
	slices.Sort(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}
	return (sorted[middle-1] + sorted[middle]) / 2
}
