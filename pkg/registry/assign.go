package registry

import (
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/knobs/pkg/domain"
)

// ParseBool converts assignment text to a boolean. "1" and "true" (in any case)
// are true; every other token is false, including malformed text.
func ParseBool(raw string) bool {
	return raw == "1" || strings.EqualFold(raw, "true")
}

// FormatBool is the inverse of ParseBool for canonical tokens.
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}

// FormatNumeric renders a numeric value in the shortest form ParseFloat reads back.
func FormatNumeric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseNumeric converts assignment text to a number. Only plain decimal text is
// accepted: an optional sign, digits with an optional fraction and an optional
// exponent. Hex floats, digit separators, "inf" and "nan" are refused, as is any
// value that overflows float64.
func ParseNumeric(raw string) (float64, bool) {
	if raw == "" || strings.TrimLeft(raw, "0123456789+-.eE") != "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Summary counts the outcomes of a batch of assignments.
type Summary struct {
	Applied    int `json:"applied"`
	Rejected   int `json:"rejected"`
	Unparsable int `json:"unparsable"`
	Unknown    int `json:"unknown"`
	Malformed  int `json:"malformed"`
}

func (s *Summary) add(o domain.Outcome) {
	switch o {
	case domain.OutcomeApplied:
		s.Applied++
	case domain.OutcomeRejected:
		s.Rejected++
	case domain.OutcomeUnparsable:
		s.Unparsable++
	case domain.OutcomeUnknown:
		s.Unknown++
	case domain.OutcomeMalformed:
		s.Malformed++
	}
}

// Skipped returns how many assignments did not change anything.
func (s Summary) Skipped() int {
	return s.Rejected + s.Unparsable + s.Unknown + s.Malformed
}

// Set assigns raw to the parameter called name.
//
// The name is resolved against booleans, then numerics, then strings; the first
// mapping that holds it receives the assignment. Booleans use ParseBool. Numerics
// are parsed with ParseNumeric and must fall within the parameter's bounds.
// Strings must be one of the parameter's possibilities.
//
// Set never fails. Unknown names, unparsable numbers and values rejected by a
// parameter leave the registry unchanged; the returned Outcome says which case
// occurred and is purely informational.
func (r *Registry) Set(name, raw string) domain.Outcome {
	if p, ok := r.bools[name]; ok {
		p.Set(ParseBool(raw))
		return r.record(name, domain.KindBool, raw, domain.OutcomeApplied)
	}

	if p, ok := r.numerics[name]; ok {
		v, ok := ParseNumeric(raw)
		if !ok {
			return r.record(name, domain.KindNumeric, raw, domain.OutcomeUnparsable)
		}
		if !p.Validate(v) {
			return r.record(name, domain.KindNumeric, raw, domain.OutcomeRejected)
		}
		p.Set(v)
		return r.record(name, domain.KindNumeric, raw, domain.OutcomeApplied)
	}

	if p, ok := r.strings[name]; ok {
		if !p.Validate(raw) {
			return r.record(name, domain.KindString, raw, domain.OutcomeRejected)
		}
		p.Set(raw)
		return r.record(name, domain.KindString, raw, domain.OutcomeApplied)
	}

	return r.record(name, "", raw, domain.OutcomeUnknown)
}

// Apply assigns each name=value argument in order, so later assignments to the same
// name win. Each argument is split on its first '=' only, which lets values contain
// '='. Arguments without '=' are skipped.
func (r *Registry) Apply(args []string) Summary {
	var sum Summary
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			sum.add(r.record(arg, "", "", domain.OutcomeMalformed))
			continue
		}
		sum.add(r.Set(name, raw))
	}
	return sum
}

// Restore assigns every value held in s through the validated setters. Names absent
// from the registry, or registered under a different kind, are skipped.
func (r *Registry) Restore(s *domain.Snapshot) Summary {
	var sum Summary
	if s == nil {
		return sum
	}
	for name, v := range s.Bools {
		p, ok := r.bools[name]
		if !ok {
			sum.add(r.record(name, domain.KindBool, FormatBool(v), domain.OutcomeUnknown))
			continue
		}
		p.Set(v)
		sum.add(r.record(name, domain.KindBool, FormatBool(v), domain.OutcomeApplied))
	}
	for name, v := range s.Numerics {
		p, ok := r.numerics[name]
		if !ok {
			sum.add(r.record(name, domain.KindNumeric, FormatNumeric(v), domain.OutcomeUnknown))
			continue
		}
		outcome := domain.OutcomeRejected
		if p.Validate(v) {
			p.Set(v)
			outcome = domain.OutcomeApplied
		}
		sum.add(r.record(name, domain.KindNumeric, FormatNumeric(v), outcome))
	}
	for name, v := range s.Strings {
		p, ok := r.strings[name]
		if !ok {
			sum.add(r.record(name, domain.KindString, v, domain.OutcomeUnknown))
			continue
		}
		outcome := domain.OutcomeRejected
		if p.Validate(v) {
			p.Set(v)
			outcome = domain.OutcomeApplied
		}
		sum.add(r.record(name, domain.KindString, v, outcome))
	}
	return sum
}

func (r *Registry) record(name string, kind domain.Kind, raw string, outcome domain.Outcome) domain.Outcome {
	if outcome == domain.OutcomeApplied {
		r.logger.Debug("parameter assigned", "name", name, "kind", kind, "value", raw)
	} else {
		r.logger.Warn("assignment skipped", "name", name, "kind", kind, "value", raw, "outcome", outcome)
	}

	if r.hooks.OnAssign != nil {
		r.hooks.OnAssign(&domain.AssignEvent{
			Timestamp: r.now(),
			Name:      name,
			Kind:      kind,
			Raw:       raw,
			Outcome:   outcome,
		})
	}
	return outcome
}
