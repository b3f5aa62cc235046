package models

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

const (
	// BucketCount is the number of half-hour slots covering one day.
	BucketCount = 48
	// BucketWidth is the length of a single slot.
	BucketWidth = 30 * time.Minute
	// MaxX is the domain scale of a distribution: seconds in a day.
	MaxX = 86400.0
)

// IntervalDistribution holds one non-negative value per fixed-width slot of a day.
type IntervalDistribution struct {
	Values []float64
	MaxX   float64
}

// NewIntervalDistribution returns an all-zero distribution over BucketCount slots.
func NewIntervalDistribution() IntervalDistribution {
	return IntervalDistribution{
		Values: make([]float64, BucketCount),
		MaxX:   MaxX,
	}
}

// Clone returns a deep copy so callers can hand out results without sharing the backing array.
func (d IntervalDistribution) Clone() IntervalDistribution {
	values := make([]float64, len(d.Values))
	copy(values, d.Values)
	return IntervalDistribution{Values: values, MaxX: d.MaxX}
}

func (d IntervalDistribution) Len() int {
	return len(d.Values)
}

func (d IntervalDistribution) Sum() float64 {
	return floats.Sum(d.Values)
}

// SlotStart returns the offset from midnight at which slot i begins.
func (d IntervalDistribution) SlotStart(i int) time.Duration {
	if len(d.Values) == 0 {
		return 0
	}
	width := time.Duration(d.MaxX/float64(len(d.Values))) * time.Second
	return time.Duration(i) * width
}

// CallerGroup is a configured category of callers.
// WeightText is kept exactly as the user entered it; it is only parsed when a
// redistribution is requested.
type CallerGroup struct {
	Name       string
	WeightText string
	Curve      IntervalDistribution
}

// Clone returns a copy of the group with its own curve.
func (g CallerGroup) Clone() CallerGroup {
	return CallerGroup{
		Name:       g.Name,
		WeightText: g.WeightText,
		Curve:      g.Curve.Clone(),
	}
}
