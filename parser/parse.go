package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	customerrors "callcenter-planner/errors"
	"callcenter-planner/metrics"
	"callcenter-planner/models"
)

// fieldsPerRecord is the group name, its weight, and one rate per half-hour slot.
const fieldsPerRecord = 2 + models.BucketCount

// Parse reads caller groups from CSV.
// Lines starting with '#' are comments. Every other record holds the group
// name, its weight, and models.BucketCount arrival rates starting at midnight.
// The weight is kept as raw text; it is validated when the groups are
// redistributed so the error can point at the group that holds it.
func Parse(r io.Reader) ([]models.CallerGroup, error) {
	start := time.Now()
	defer func() {
		metrics.ParserDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var groups []models.CallerGroup

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues("csv").Inc()
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		lineNum, _ := reader.FieldPos(0)

		if len(record) > 0 && strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}

		group, err := parseRecord(record)
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues(errorType(err)).Inc()
			return nil, &customerrors.ParseError{
				Line:   lineNum,
				Record: record,
				Err:    err,
			}
		}

		metrics.ParserRecordsTotal.Inc()
		groups = append(groups, group)
	}

	return groups, nil
}

func parseRecord(record []string) (models.CallerGroup, error) {
	if len(record) != fieldsPerRecord {
		return models.CallerGroup{}, fmt.Errorf("%w: got %d, want %d",
			customerrors.ErrInvalidFieldCount, len(record), fieldsPerRecord)
	}

	group := models.CallerGroup{
		Name:       strings.TrimSpace(record[0]),
		WeightText: strings.TrimSpace(record[1]),
		Curve:      models.NewIntervalDistribution(),
	}
	if group.Name == "" {
		return models.CallerGroup{}, customerrors.ErrEmptyName
	}

	for i, field := range record[2:] {
		rate, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return models.CallerGroup{}, fmt.Errorf("%w: slot %d: %v", customerrors.ErrInvalidRate, i, err)
		}
		if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return models.CallerGroup{}, fmt.Errorf("%w: slot %d: %v", customerrors.ErrInvalidRate, i, rate)
		}
		group.Curve.Values[i] = rate
	}

	return group, nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, customerrors.ErrInvalidFieldCount):
		return "field_count"
	case errors.Is(err, customerrors.ErrEmptyName):
		return "empty_name"
	case errors.Is(err, customerrors.ErrInvalidRate):
		return "rate"
	default:
		return "other"
	}
}
