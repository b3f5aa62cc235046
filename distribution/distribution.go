// Package distribution spreads a total call volume across the slots of a day in
// proportion to weighted per-group arrival curves.
//
// The work is split into three steps that can be run and checked on their own:
// Accumulate, NormalizeDensity and ScaleAndRound. Redistribute chains them.
// None of the functions mutate their inputs.
package distribution

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	customerrors "callcenter-planner/errors"
	"callcenter-planner/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// WeightField is a weight as typed by the user, labelled with the field it came from.
type WeightField struct {
	Name string
	Text string
}

// ParseWeights parses every field into a non-negative weight.
// The first field that fails is returned as a *errors.FieldError and no weights are returned.
func ParseWeights(fields []WeightField) ([]float64, error) {
	weights := make([]float64, len(fields))
	for i, f := range fields {
		text := strings.TrimSpace(f.Text)
		w, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, &customerrors.FieldError{
				Field: f.Name,
				Value: f.Text,
				Err:   customerrors.ErrInvalidWeight,
			}
		}
		if w < 0 {
			return nil, &customerrors.FieldError{
				Field: f.Name,
				Value: f.Text,
				Err:   customerrors.ErrNegativeWeight,
			}
		}
		weights[i] = w
	}
	return weights, nil
}

// Accumulate sums each curve scaled by its weight into a fresh distribution.
// Curves with a zero weight are skipped. A result whose sum overflows to a
// non-finite value is rejected with ErrNonFiniteSum.
func Accumulate(weights []float64, curves []models.IntervalDistribution) (models.IntervalDistribution, error) {
	if len(weights) != len(curves) {
		return models.IntervalDistribution{}, fmt.Errorf("%w: %d weights, %d curves",
			customerrors.ErrWeightCount, len(weights), len(curves))
	}

	result := models.NewIntervalDistribution()
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return models.IntervalDistribution{}, fmt.Errorf("%w: weight %d is %v",
				customerrors.ErrNegativeWeight, i, w)
		}
		if curves[i].Len() != models.BucketCount {
			return models.IntervalDistribution{}, fmt.Errorf("%w: curve %d has %d buckets, want %d",
				customerrors.ErrBucketCount, i, curves[i].Len(), models.BucketCount)
		}
	}

	for i, w := range weights {
		if w == 0 {
			continue
		}
		floats.AddScaled(result.Values, w, curves[i].Values)
	}

	if sum := floats.Sum(result.Values); math.IsInf(sum, 0) || math.IsNaN(sum) {
		return models.IntervalDistribution{}, fmt.Errorf("%w: weighted curves sum to %v",
			customerrors.ErrNonFiniteSum, sum)
	}
	return result, nil
}

// NormalizeDensity rescales d so its buckets sum to one.
// A distribution that sums to zero comes back as all zeros.
func NormalizeDensity(d models.IntervalDistribution) models.IntervalDistribution {
	out := d.Clone()
	sum := floats.Sum(out.Values)
	if sum == 0 {
		for i := range out.Values {
			out.Values[i] = 0
		}
		return out
	}
	floats.Scale(1/sum, out.Values)
	return out
}

// ScaleAndRound multiplies every bucket of d by total and rounds it to the nearest integer.
func ScaleAndRound(d models.IntervalDistribution, total float64) models.IntervalDistribution {
	out := d.Clone()
	floats.Scale(total, out.Values)
	for i, v := range out.Values {
		out.Values[i] = scalar.Round(v, 0)
	}
	return out
}

// Redistribute returns total spread over the day in proportion to the weighted curves.
// If every weight is zero the result is all zeros.
func Redistribute(weights []float64, curves []models.IntervalDistribution, total float64) (models.IntervalDistribution, error) {
	if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return models.IntervalDistribution{}, fmt.Errorf("%w: %v", customerrors.ErrInvalidTotal, total)
	}

	acc, err := Accumulate(weights, curves)
	if err != nil {
		return models.IntervalDistribution{}, err
	}
	return ScaleAndRound(NormalizeDensity(acc), total), nil
}
