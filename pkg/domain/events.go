package domain

import "time"

// Outcome classifies what happened to a single assignment.
type Outcome string

const (
	OutcomeApplied    Outcome = "applied"    // Value stored (possibly unchanged)
	OutcomeRejected   Outcome = "rejected"   // Value failed the parameter's constraints
	OutcomeUnparsable Outcome = "unparsable" // Raw text could not be parsed for the kind
	OutcomeUnknown    Outcome = "unknown"    // No parameter with that name
	OutcomeMalformed  Outcome = "malformed"  // Argument had no '=' separator
)

// AssignEvent describes one assignment attempt against a registry.
type AssignEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind,omitempty"` // Empty for unknown or malformed assignments
	Raw       string    `json:"raw"`
	Outcome   Outcome   `json:"outcome"`
}

// Hooks defines callbacks for registry observability.
type Hooks struct {
	OnAssign func(*AssignEvent)
}
