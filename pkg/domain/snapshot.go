package domain

// Snapshot is a plain copy of every parameter value in a registry, keyed by name.
// Constraints are not part of a snapshot.
type Snapshot struct {
	Bools    map[string]bool    `json:"bools,omitempty" yaml:"bools,omitempty"`
	Numerics map[string]float64 `json:"numerics,omitempty" yaml:"numerics,omitempty"`
	Strings  map[string]string  `json:"strings,omitempty" yaml:"strings,omitempty"`
}

// NewSnapshot returns a snapshot with empty, non-nil maps.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Bools:    make(map[string]bool),
		Numerics: make(map[string]float64),
		Strings:  make(map[string]string),
	}
}

// Len returns the total number of values held.
func (s *Snapshot) Len() int {
	return len(s.Bools) + len(s.Numerics) + len(s.Strings)
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	c := NewSnapshot()
	for k, v := range s.Bools {
		c.Bools[k] = v
	}
	for k, v := range s.Numerics {
		c.Numerics[k] = v
	}
	for k, v := range s.Strings {
		c.Strings[k] = v
	}
	return c
}
