package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"callcenter-planner/models"
)

// DistributionData holds prepared distribution data used by all formatters
type DistributionData struct {
	Slots []SlotData `json:"slots"`
	Total float64    `json:"total"`
}

// SlotData is one half-hour slot of the day
type SlotData struct {
	Slot  int     `json:"slot"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Calls float64 `json:"calls"`
}

// prepareDistributionData labels every bucket with its clock interval
func prepareDistributionData(d models.IntervalDistribution) *DistributionData {
	slots := make([]SlotData, d.Len())
	for i, v := range d.Values {
		slots[i] = SlotData{
			Slot:  i,
			Start: clock(d.SlotStart(i)),
			End:   clock(d.SlotStart(i + 1)),
			Calls: v,
		}
	}
	return &DistributionData{
		Slots: slots,
		Total: d.Sum(),
	}
}

// FormatText returns the text representation of the distribution
func FormatText(d models.IntervalDistribution) string {
	data := prepareDistributionData(d)
	var sb strings.Builder

	for _, slot := range data.Slots {
		sb.WriteString(fmt.Sprintf("%s-%s : %s\n", slot.Start, slot.End, number(slot.Calls)))
	}
	sb.WriteString(fmt.Sprintf("total=%s\n", number(data.Total)))

	return sb.String()
}

// FormatJSON returns the JSON representation of the distribution.
// Non-finite bucket values cannot be encoded and return an error.
func FormatJSON(d models.IntervalDistribution) (string, error) {
	data := prepareDistributionData(d)
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding distribution: %w", err)
	}
	return string(jsonBytes), nil
}

// FormatCSV returns the CSV representation of the distribution
func FormatCSV(d models.IntervalDistribution) string {
	data := prepareDistributionData(d)
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{"Slot", "Start", "End", "Calls"})
	for _, slot := range data.Slots {
		writer.Write([]string{
			strconv.Itoa(slot.Slot),
			slot.Start,
			slot.End,
			number(slot.Calls),
		})
	}

	writer.Flush()
	return sb.String()
}

// clock renders an offset from midnight as HH:MM; the end of the day is 24:00
func clock(offset time.Duration) string {
	minutes := int(offset / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// number drops the fraction of whole values so rounded buckets print as integers
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
