package models_test

import (
	"testing"
	"time"

	"callcenter-planner/models"

	"github.com/stretchr/testify/assert"
)

func TestNewIntervalDistribution(t *testing.T) {
	d := models.NewIntervalDistribution()

	assert.Equal(t, models.BucketCount, d.Len())
	assert.Equal(t, models.MaxX, d.MaxX)
	assert.Equal(t, 0.0, d.Sum())
}

func TestSlotStart(t *testing.T) {
	d := models.NewIntervalDistribution()

	assert.Equal(t, time.Duration(0), d.SlotStart(0))
	assert.Equal(t, models.BucketWidth, d.SlotStart(1))
	assert.Equal(t, 8*time.Hour+30*time.Minute, d.SlotStart(17))
	assert.Equal(t, 24*time.Hour, d.SlotStart(models.BucketCount))
}

func TestClone(t *testing.T) {
	g := models.CallerGroup{Name: "Sales", WeightText: "1", Curve: models.NewIntervalDistribution()}
	g.Curve.Values[3] = 5

	c := g.Clone()
	c.Curve.Values[3] = 9

	assert.Equal(t, 5.0, g.Curve.Values[3])
	assert.Equal(t, "Sales", c.Name)
}

func TestSum(t *testing.T) {
	d := models.NewIntervalDistribution()
	d.Values[0] = 1.5
	d.Values[47] = 2.5

	assert.Equal(t, 4.0, d.Sum())
}
