// Package names hands out group names that do not collide with names already
// used in an editing session.
//
// Names compare case-insensitively using Unicode case folding, so "Sales",
// "SALES" and "sales" are all the same name. A ReservedNameSet is not safe for
// concurrent use.
package names

import (
	"fmt"
	"strconv"
	"strings"

	"callcenter-planner/metrics"

	"golang.org/x/text/cases"
)

// ReservedNameSet is the ordered collection of names already in use.
type ReservedNameSet struct {
	names  []string
	folded map[string]struct{}
	fold   cases.Caser
}

// NewReservedNameSet returns a set holding the given names.
// Names that fold to an already reserved name are dropped.
func NewReservedNameSet(names ...string) *ReservedNameSet {
	s := &ReservedNameSet{
		folded: make(map[string]struct{}, len(names)),
		fold:   cases.Fold(),
	}
	for _, n := range names {
		s.Reserve(n)
	}
	return s
}

// Reserve adds name to the set. It returns false if an equal name is already reserved.
func (s *ReservedNameSet) Reserve(name string) bool {
	key := s.key(name)
	if _, ok := s.folded[key]; ok {
		return false
	}
	s.folded[key] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name matches a reserved name, ignoring case.
func (s *ReservedNameSet) Contains(name string) bool {
	_, ok := s.folded[s.key(name)]
	return ok
}

func (s *ReservedNameSet) Len() int {
	return len(s.names)
}

// Names returns the reserved names in reservation order.
func (s *ReservedNameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// GetUniqueNewName returns a name based on candidate that matches no reserved name.
//
// With an empty set the candidate is returned as is. Otherwise a trailing
// " (k)" with integer k > 1 is stripped and numbering continues at k+1;
// any other candidate is numbered from 2. The result is not reserved.
func (s *ReservedNameSet) GetUniqueNewName(candidate string) string {
	name, _ := s.uniqueName(candidate)
	return name
}

// ReserveUniqueName generates a unique name for candidate and reserves it.
func (s *ReservedNameSet) ReserveUniqueName(candidate string) string {
	name, probes := s.uniqueName(candidate)
	s.Reserve(name)
	metrics.NamesGeneratedTotal.Inc()
	metrics.NameProbes.Observe(float64(probes))
	return name
}

// Equal reports whether a and b name the same thing under the set's case folding.
func (s *ReservedNameSet) Equal(a, b string) bool {
	return s.key(a) == s.key(b)
}

// uniqueName returns the generated name and the number of suffixed candidates tried.
func (s *ReservedNameSet) uniqueName(candidate string) (string, int) {
	if len(s.names) == 0 {
		return candidate, 0
	}

	base, start := splitSuffix(candidate)
	probes := 0
	for n := start + 1; ; n++ {
		probes++
		name := fmt.Sprintf("%s (%d)", base, n)
		if !s.Contains(name) {
			return name, probes
		}
	}
}

func (s *ReservedNameSet) key(name string) string {
	if s.folded == nil {
		s.folded = make(map[string]struct{})
		s.fold = cases.Fold()
	}
	return s.fold.String(name)
}

// splitSuffix separates "Base (k)" into its base and counter.
// Anything that is not a " (k)" suffix with k > 1 leaves the candidate whole
// with counter 1.
func splitSuffix(candidate string) (string, int) {
	if !strings.HasSuffix(candidate, ")") {
		return candidate, 1
	}
	open := strings.LastIndex(candidate, " (")
	if open < 0 {
		return candidate, 1
	}
	k, err := strconv.Atoi(candidate[open+2 : len(candidate)-1])
	if err != nil || k <= 1 {
		return candidate, 1
	}
	return strings.TrimRight(candidate[:open], " "), k
}
