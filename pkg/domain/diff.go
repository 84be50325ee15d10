package domain

import "sort"

// SnapshotDiff represents the changes between two snapshots.
// It is designed to be serialized to JSON for partial updates on the client.
type SnapshotDiff struct {
	// Per-kind values that were added or modified, holding the new value.
	Bools    map[string]bool    `json:"bools,omitempty"`
	Numerics map[string]float64 `json:"numerics,omitempty"`
	Strings  map[string]string  `json:"strings,omitempty"`

	// Removed lists names present in the old snapshot only.
	Removed []string `json:"removed,omitempty"`
}

// Diff calculates the difference between oldSnap and newSnap.
// If oldSnap is nil, it returns a diff representing the entire newSnap.
// It returns nil when nothing changed.
func Diff(oldSnap, newSnap *Snapshot) *SnapshotDiff {
	if newSnap == nil {
		return nil
	}
	if oldSnap == nil {
		oldSnap = NewSnapshot()
	}

	diff := &SnapshotDiff{
		Bools:    diffValues(oldSnap.Bools, newSnap.Bools),
		Numerics: diffValues(oldSnap.Numerics, newSnap.Numerics),
		Strings:  diffValues(oldSnap.Strings, newSnap.Strings),
	}

	for _, name := range oldSnap.names() {
		if !newSnap.has(name) {
			diff.Removed = append(diff.Removed, name)
		}
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffValues[V comparable](old, new map[string]V) map[string]V {
	delta := make(map[string]V)
	for k, newVal := range new {
		if oldVal, exists := old[k]; !exists || oldVal != newVal {
			delta[k] = newVal
		}
	}
	// Return nil if delta is empty so omitempty can remove the key
	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks if the diff contains any changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return len(d.Bools) == 0 &&
		len(d.Numerics) == 0 &&
		len(d.Strings) == 0 &&
		len(d.Removed) == 0
}

// Changed returns the added or modified names in sorted order.
func (d *SnapshotDiff) Changed() []string {
	var names []string
	for k := range d.Bools {
		names = append(names, k)
	}
	for k := range d.Numerics {
		names = append(names, k)
	}
	for k := range d.Strings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (s *Snapshot) has(name string) bool {
	if _, ok := s.Bools[name]; ok {
		return true
	}
	if _, ok := s.Numerics[name]; ok {
		return true
	}
	_, ok := s.Strings[name]
	return ok
}

func (s *Snapshot) names() []string {
	names := make([]string, 0, s.Len())
	for k := range s.Bools {
		names = append(names, k)
	}
	for k := range s.Numerics {
		names = append(names, k)
	}
	for k := range s.Strings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
