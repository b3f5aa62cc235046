package formatter_test

import (
	"math"
	"strings"
	"testing"

	"callcenter-planner/formatter"
	"callcenter-planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() models.IntervalDistribution {
	d := models.NewIntervalDistribution()
	d.Values[0] = 3
	d.Values[17] = 120
	d.Values[47] = 7
	return d
}

func TestFormatText(t *testing.T) {
	tests := map[string]struct {
		dist     models.IntervalDistribution
		contains []string
	}{
		"EmptyDistribution": {
			dist: models.NewIntervalDistribution(),
			contains: []string{
				"00:00-00:30 : 0",
				"12:00-12:30 : 0",
				"23:30-24:00 : 0",
				"total=0",
			},
		},
		"SimpleDistribution": {
			dist: sample(),
			contains: []string{
				"00:00-00:30 : 3",
				"08:30-09:00 : 120",
				"23:30-24:00 : 7",
				"total=130",
			},
		},
		"FractionalValue": {
			dist: func() models.IntervalDistribution {
				d := models.NewIntervalDistribution()
				d.Values[1] = 0.5
				return d
			}(),
			contains: []string{
				"00:30-01:00 : 0.5",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output := formatter.FormatText(tt.dist)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestFormatText_OneLinePerSlot(t *testing.T) {
	output := formatter.FormatText(sample())
	lines := strings.Split(strings.TrimSpace(output), "\n")

	assert.Len(t, lines, models.BucketCount+1)
}

func TestFormatJSON(t *testing.T) {
	output, err := formatter.FormatJSON(sample())
	require.NoError(t, err)

	for _, s := range []string{
		`"slot": 17`,
		`"start": "08:30"`,
		`"end": "09:00"`,
		`"calls": 120`,
		`"total": 130`,
	} {
		assert.Contains(t, output, s)
	}
}

func TestFormatJSON_NonFiniteValue(t *testing.T) {
	d := models.NewIntervalDistribution()
	d.Values[16] = math.NaN()

	output, err := formatter.FormatJSON(d)
	assert.Error(t, err)
	assert.Empty(t, output)
}

func TestFormatCSV(t *testing.T) {
	output := formatter.FormatCSV(sample())
	lines := strings.Split(strings.TrimSpace(output), "\n")

	require.Len(t, lines, models.BucketCount+1)
	assert.Equal(t, "Slot,Start,End,Calls", lines[0])
	assert.Equal(t, "0,00:00,00:30,3", lines[1])
	assert.Equal(t, "17,08:30,09:00,120", lines[18])
	assert.Equal(t, "47,23:30,24:00,7", lines[48])
}
