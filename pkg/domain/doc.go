/*
Package domain contains the core parameter model for knobs.

It defines the three typed parameters, their validation rules and the plain data
exchanged with adapters. This package is kept pure and free of external dependencies
like I/O or persistence.

# Key Entities

  - BoolParameter: a flag; every value is legal.
  - NumericParameter: a float64 bounded to [min, max], with an informational step.
  - StringParameter: a string restricted to a fixed, ordered enumeration.
  - Snapshot: the values of a registry, detached from their constraints.
  - AssignEvent: what happened to one assignment, for hooks and metrics.
  - SnapshotDiff: the values that differ between two snapshots.

Setters never fail loudly. A value that violates a parameter's constraints is dropped
and the previous value is kept.
*/
package domain
