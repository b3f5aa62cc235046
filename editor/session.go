// Package editor holds the state of one caller-group editing session.
//
// A Session owns the reserved group names, the ordered caller groups and the
// last committed distribution. It is meant to be driven from a single
// goroutine; callers that share a Session must synchronise access themselves.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"callcenter-planner/distribution"
	customerrors "callcenter-planner/errors"
	"callcenter-planner/metrics"
	"callcenter-planner/models"
	"callcenter-planner/names"
)

// Session is one editing session over a set of caller groups.
type Session struct {
	log       *slog.Logger
	names     *names.ReservedNameSet
	groups    []models.CallerGroup
	dist      models.IntervalDistribution
	committed bool
}

// NewSession creates a session holding the given groups.
// Groups whose names collide are renamed the same way DuplicateGroup names copies.
func NewSession(log *slog.Logger, groups ...models.CallerGroup) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		log:   log,
		names: names.NewReservedNameSet(),
	}
	for _, g := range groups {
		s.AddGroup(g)
	}
	return s
}

// AddGroup appends a copy of group and returns it as stored.
// If the name is already taken the group is stored under a generated unique name.
func (s *Session) AddGroup(group models.CallerGroup) models.CallerGroup {
	g := group.Clone()
	if s.names.Contains(g.Name) {
		g.Name = s.names.ReserveUniqueName(g.Name)
		s.log.Info("renamed colliding group", slog.String("requested", group.Name), slog.String("name", g.Name))
	} else {
		s.names.Reserve(g.Name)
	}
	s.groups = append(s.groups, g)
	return g.Clone()
}

// DuplicateGroup copies the named group under a new unique name and appends the copy.
func (s *Session) DuplicateGroup(name string) (models.CallerGroup, error) {
	i, err := s.find(name)
	if err != nil {
		return models.CallerGroup{}, err
	}

	dup := s.groups[i].Clone()
	dup.Name = s.names.ReserveUniqueName(dup.Name)
	s.groups = append(s.groups, dup)

	s.log.Info("duplicated group", slog.String("source", s.groups[i].Name), slog.String("name", dup.Name))
	return dup.Clone(), nil
}

// SetWeight stores the raw weight text for the named group.
// The text is not checked until the next Redistribute.
func (s *Session) SetWeight(name, text string) error {
	i, err := s.find(name)
	if err != nil {
		return err
	}
	s.groups[i].WeightText = text
	return nil
}

// Redistribute spreads total over the day according to the current group
// weights and curves, and commits the result to the session.
//
// Every weight is validated before anything is computed. On any error the
// previously committed distribution is left untouched.
func (s *Session) Redistribute(total float64) (models.IntervalDistribution, error) {
	start := time.Now()

	fields := make([]distribution.WeightField, len(s.groups))
	curves := make([]models.IntervalDistribution, len(s.groups))
	for i, g := range s.groups {
		fields[i] = distribution.WeightField{Name: g.Name, Text: g.WeightText}
		curves[i] = g.Curve
	}

	weights, err := distribution.ParseWeights(fields)
	if err != nil {
		return models.IntervalDistribution{}, s.reject(err)
	}

	result, err := distribution.Redistribute(weights, curves, total)
	if err != nil {
		return models.IntervalDistribution{}, s.reject(err)
	}

	s.dist = result
	s.committed = true

	metrics.RedistributionDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.RedistributionsTotal.Inc()
	metrics.DistributedTotal.Set(result.Sum())
	s.log.Info("redistribution committed",
		slog.Int("groups", len(s.groups)),
		slog.Float64("total", total),
		slog.Float64("distributed", result.Sum()))

	return result.Clone(), nil
}

// Distribution returns the last committed distribution, if any.
func (s *Session) Distribution() (models.IntervalDistribution, bool) {
	if !s.committed {
		return models.IntervalDistribution{}, false
	}
	return s.dist.Clone(), true
}

// Groups returns copies of the session's groups in insertion order.
func (s *Session) Groups() []models.CallerGroup {
	out := make([]models.CallerGroup, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.Clone()
	}
	return out
}

// Names returns every name reserved during the session in reservation order.
func (s *Session) Names() []string {
	return s.names.Names()
}

func (s *Session) find(name string) (int, error) {
	for i, g := range s.groups {
		if s.names.Equal(g.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", customerrors.ErrGroupNotFound, name)
}

func (s *Session) reject(err error) error {
	metrics.RedistributionsRejected.WithLabelValues(rejectionType(err)).Inc()

	var fieldErr *customerrors.FieldError
	if errors.As(err, &fieldErr) {
		s.log.Warn("redistribution rejected",
			slog.String("field", fieldErr.Field),
			slog.String("value", fieldErr.Value),
			slog.String("error", fieldErr.Err.Error()))
	} else {
		s.log.Warn("redistribution rejected", slog.String("error", err.Error()))
	}
	return err
}

func rejectionType(err error) string {
	switch {
	case errors.Is(err, customerrors.ErrInvalidWeight):
		return "invalid_weight"
	case errors.Is(err, customerrors.ErrNegativeWeight):
		return "negative_weight"
	case errors.Is(err, customerrors.ErrBucketCount):
		return "bucket_count"
	case errors.Is(err, customerrors.ErrInvalidTotal):
		return "invalid_total"
	case errors.Is(err, customerrors.ErrNonFiniteSum):
		return "non_finite_sum"
	default:
		return "other"
	}
}
