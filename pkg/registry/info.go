package registry

import "github.com/aretw0/knobs/pkg/domain"

// Info is a read-only view of one parameter: its kind, current value and
// constraints.
type Info struct {
	Name    string      `json:"name" yaml:"name"`
	Kind    domain.Kind `json:"kind" yaml:"kind"`
	Value   any         `json:"value" yaml:"value"`
	Min     *float64    `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64    `json:"max,omitempty" yaml:"max,omitempty"`
	Step    *float64    `json:"step,omitempty" yaml:"step,omitempty"`
	Options []string    `json:"options,omitempty" yaml:"options,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Info returns the view of the parameter called name.
func (r *Registry) Info(name string) (Info, bool) {
	info := Info{Name: name, Description: r.descriptions[name]}

	if p, ok := r.bools[name]; ok {
		info.Kind = domain.KindBool
		info.Value = p.Get()
		return info, true
	}
	if p, ok := r.numerics[name]; ok {
		lo, hi, step := p.Min(), p.Max(), p.Step()
		info.Kind = domain.KindNumeric
		info.Value = p.Get()
		info.Min, info.Max, info.Step = &lo, &hi, &step
		return info, true
	}
	if p, ok := r.strings[name]; ok {
		info.Kind = domain.KindString
		info.Value = p.Get()
		info.Options = p.Possibilities()
		return info, true
	}
	return Info{}, false
}

// Infos returns the view of every parameter in name order.
func (r *Registry) Infos() []Info {
	names := r.Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		info, _ := r.Info(name)
		infos = append(infos, info)
	}
	return infos
}
